package domain

import "github.com/m04kA/ORS-BookingService/pkg/types"

// BookingConfirmed событие подтверждения места на смене
// Порождается движком переходов при прямой записи и при продвижении
// из листа ожидания; доставка письма выполняется асинхронно после коммита
// и никогда не влияет на результат транзакции
type BookingConfirmed struct {
	NotifyEmail string
	DisplayName string
	ShiftDate   types.DateString
}
