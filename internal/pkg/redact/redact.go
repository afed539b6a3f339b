// redact содержит плейсхолдеры для чувствительных значений в логах.
// Сериализованные токены и хэши секретов в логи не попадают никогда —
// вместо них пишутся литералы из этого пакета.
package redact

func Token() string  { return "[REDACTED_TOKEN]" }
func Secret() string { return "[REDACTED_SECRET]" }
