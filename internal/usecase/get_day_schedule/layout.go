package get_day_schedule

import (
	"fmt"

	"github.com/m04kA/RBM-ScheduleService/internal/domain"
)

// layoutReservation раскладывает одно бронирование в блоки колонки зала.
// Возвращает до трех блоков: буфер подготовки, основной интервал, буфер уборки.
// Буферы появляются только при назначенном персонале соответствующей роли.
//
// Пересечения броней одного зала не разрешаются: перекрывающиеся интервалы
// дают перекрывающиеся прямоугольники в порядке входа, это не ошибка.
func layoutReservation(axis domain.Axis, res *domain.Reservation, staffNames []string) []Block {
	style := styleClassFor(res.Status)

	startPos := axis.PositionOf(res.StartTime)
	mainHeight := axis.HeightOf(res.DurationMinutes())

	prepMinutes := res.PrepMinutes()
	cleaningMinutes := res.CleaningMinutes()
	hasPrep := prepMinutes > 0
	hasCleaning := cleaningMinutes > 0

	blocks := make([]Block, 0, 3)

	if hasPrep {
		blocks = append(blocks, Block{
			ReservationID: res.ID,
			Kind:          KindPrep,
			Top:           startPos - axis.HeightOf(prepMinutes),
			Height:        bufferHeight(axis, prepMinutes),
			Style:         style,
			RoundTop:      true,
			RoundBottom:   false,
		})
	}

	blocks = append(blocks, Block{
		ReservationID: res.ID,
		Kind:          KindMain,
		Top:           startPos + domain.MainInsetTopPx,
		Height:        maxFloat(mainHeight-domain.MainInsetShrinkPx, domain.MinMainHeightPx),
		Style:         style,
		// Основной блок скругляется только с той стороны, где нет буфера
		RoundTop:    !hasPrep,
		RoundBottom: !hasCleaning,
		GroupName:   groupLabel(res),
		TimeRange:   fmt.Sprintf("%s - %s", res.StartTime, res.EndTime),
		PartySize:   res.PartySize,
		StaffNames:  staffNames,
	})

	if hasCleaning {
		blocks = append(blocks, Block{
			ReservationID: res.ID,
			Kind:          KindCleaning,
			Top:           startPos + mainHeight,
			Height:        bufferHeight(axis, cleaningMinutes),
			Style:         style,
			RoundTop:      false,
			RoundBottom:   true,
		})
	}

	return blocks
}

// bufferHeight высота буферного блока с учетом минимальной кликабельной высоты
func bufferHeight(axis domain.Axis, minutes int) float64 {
	return maxFloat(axis.HeightOf(minutes)-domain.BufferShrinkPx, domain.MinBufferHeightPx)
}

// styleClassFor возвращает класс оформления по статусу брони.
// Все статусы кроме confirmed и cancelled, включая legacy deposit_paid,
// отображаются как pending.
func styleClassFor(status domain.ReservationStatus) StyleClass {
	switch status {
	case domain.StatusConfirmed:
		return StyleConfirmed
	case domain.StatusCancelled:
		return StyleCancelled
	default:
		return StylePending
	}
}

// groupLabel подпись брони: имя группы, иначе имя представителя
func groupLabel(res *domain.Reservation) string {
	if res.GroupName != nil && *res.GroupName != "" {
		return *res.GroupName
	}
	if res.RepName != nil && *res.RepName != "" {
		return *res.RepName
	}
	return ""
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
