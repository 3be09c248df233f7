package domain

// LocalReport — результат локальной (офлайн) проверки файла.
type LocalReport struct {
	// Rows — все строки данных для отображения; пусто, если файл отклонён.
	Rows []Row
	// Errors — одна ошибка уровня файла либо ошибки строк в порядке строк.
	Errors []RowError
	// EligibleCSV — заголовок и структурно валидные строки; "" если таких строк нет.
	EligibleCSV string
}

// Rejected — файл отклонён целиком (шаги 1–4 локальной проверки).
func (r *LocalReport) Rejected() bool {
	return len(r.Errors) > 0 && r.Errors[0].Kind.IsFileLevel()
}
