// internal/system/utils.go
package system

// clearTail обнуляет хвост пула после фильтрации на месте,
// чтобы отброшенные сущности не удерживались сборщиком мусора.
func clearTail[T any](pool []*T, keep int) {
	for i := keep; i < len(pool); i++ {
		pool[i] = nil
	}
}

// Deferrer откладывает вызов на delay секунд игрового времени.
// Реализация обязана отбрасывать вызов, если сессия с тех пор закончилась
// или была перезапущена.
type Deferrer interface {
	Defer(delay float64, fn func(now float64))
}
