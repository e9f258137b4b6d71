package domain

// Action действие пользователя над сменой
// Конкретное действие выводится из текущего состояния заявок пользователя:
// участник может только отменить запись, ожидающий - покинуть лист ожидания,
// остальные - записаться или встать в лист ожидания
type Action string

const (
	ActionBook          Action = "book"
	ActionCancel        Action = "cancel"
	ActionJoinWaitlist  Action = "join_waitlist"
	ActionLeaveWaitlist Action = "leave_waitlist"
)
