package assistant

import "github.com/smart-taythanh/STT-CitizenService/internal/domain"

// languagePack тексты ассистента для одного языка
type languagePack struct {
	Greeting string
	Fallback string
}

// Два захардкоженных языковых пакета. Расширение набора языков
// вне скоупа сервиса.
var languagePacks = map[string]languagePack{
	domain.LanguageVietnamese: {
		Greeting: "Dạ, Trợ lý AI xin kính chào ông/bà! 💬 Tôi có thể hỗ trợ tra cứu thủ tục hành chính, đặt lịch hẹn 📅 và giải đáp thắc mắc về dịch vụ công của Phường Tây Thạnh.",
		Fallback: "Dạ, hệ thống trợ lý đang tạm thời gián đoạn. Ông/bà vui lòng thử lại sau ít phút hoặc liên hệ trực tiếp Trung tâm Phục vụ Hành chính công Phường Tây Thạnh. 🙏",
	},
	domain.LanguageEnglish: {
		Greeting: "Hello! 💬 I can help you look up administrative procedures, book appointments 📅 and answer questions about Tay Thanh Ward public services.",
		Fallback: "The assistant is temporarily unavailable. Please try again in a few minutes or contact the Tay Thanh Ward Public Administration Service Center directly. 🙏",
	},
}

// packFor возвращает языковой пакет, вьетнамский по умолчанию
func packFor(language string) languagePack {
	if pack, ok := languagePacks[language]; ok {
		return pack
	}
	return languagePacks[domain.LanguageVietnamese]
}

// isSupportedLanguage проверяет, что язык входит в поддерживаемый набор
func isSupportedLanguage(language string) bool {
	_, ok := languagePacks[language]
	return ok
}
