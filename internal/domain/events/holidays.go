package events

import "time"

// holidaySpec describe un festivo oficial mexicano. Los de fecha móvil
// usan la regla de n-ésimo lunes del mes de la Ley Federal del Trabajo.
type holidaySpec struct {
	Title       string
	Description string
	Color       string

	Month time.Month
	Day   int // 0 si es de fecha móvil

	Weekday time.Weekday
	Nth     int
}

var mexicanHolidays = []holidaySpec{
	{
		Title:       "Año Nuevo",
		Description: "Celebración del inicio del nuevo año",
		Color:       "bg-red-100 text-red-800",
		Month:       time.January,
		Day:         1,
	},
	{
		Title:       "Aniversario de la Constitución",
		Description: "Conmemoración de la Constitución Política de los Estados Unidos Mexicanos",
		Color:       "bg-blue-100 text-blue-800",
		Month:       time.February,
		Weekday:     time.Monday,
		Nth:         1,
	},
	{
		Title:       "Natalicio de Benito Juárez",
		Description: "Conmemoración del nacimiento de Benito Juárez",
		Color:       "bg-green-100 text-green-800",
		Month:       time.March,
		Weekday:     time.Monday,
		Nth:         3,
	},
	{
		Title:       "Día del Trabajo",
		Description: "Celebración del Día Internacional de los Trabajadores",
		Color:       "bg-yellow-100 text-yellow-800",
		Month:       time.May,
		Day:         1,
	},
	{
		Title:       "Día de la Independencia",
		Description: "Conmemoración de la Independencia de México",
		Color:       "bg-green-100 text-green-800",
		Month:       time.September,
		Day:         16,
	},
	{
		Title:       "Aniversario de la Revolución",
		Description: "Conmemoración del inicio de la Revolución Mexicana",
		Color:       "bg-purple-100 text-purple-800",
		Month:       time.November,
		Weekday:     time.Monday,
		Nth:         3,
	},
	{
		Title:       "Navidad",
		Description: "Celebración del nacimiento de Jesucristo",
		Color:       "bg-red-100 text-red-800",
		Month:       time.December,
		Day:         25,
	},
}

func (h holidaySpec) dateIn(year int) time.Time {
	if h.Day > 0 {
		return time.Date(year, h.Month, h.Day, 0, 0, 0, 0, time.UTC)
	}
	return nthWeekdayOfMonth(year, h.Month, h.Weekday, h.Nth)
}

func nthWeekdayOfMonth(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysToAdd := (int(weekday) - int(first.Weekday()) + 7) % 7
	daysToAdd += (n - 1) * 7
	return first.AddDate(0, 0, daysToAdd)
}
