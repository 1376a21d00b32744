package gemini

// Role роль автора сообщения в истории диалога
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message одно сообщение истории диалога
type Message struct {
	Role Role
	Text string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
