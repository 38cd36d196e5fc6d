package rabbitmq

// QueueConfig описывает очередь и ключ маршрутизации для её привязки.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// WelcomeQueue — очередь приветственных писем новым пользователям.
const (
	WelcomeQueue      = "notifications.welcome"
	WelcomeRoutingKey = "welcome"
)

// GetNotificationQueues возвращает конфигурацию очередей уведомлений.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: WelcomeQueue, RoutingKey: WelcomeRoutingKey},
	}
}
