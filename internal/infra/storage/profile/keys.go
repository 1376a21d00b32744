package profile

// Фиксированные ключи профиля устройства. Значения - простые строки,
// без шифрования и без срока жизни.
const (
	KeyUserName  = "smart_taythanh_user_name"
	KeyUserCCCD  = "smart_taythanh_user_cccd"
	KeyUserPhone = "smart_taythanh_user_phone"
	KeyUserEmail = "smart_taythanh_user_email"

	KeyChatAvatar   = "smart_taythanh_chat_avatar"
	KeyChatLanguage = "smart_taythanh_chat_language"
)

// UserKeys ключи, очищаемые при выходе пользователя
var UserKeys = []string{KeyUserName, KeyUserCCCD, KeyUserPhone, KeyUserEmail}
