package health

type Status string

const (
	StatusOK       Status = "ok"
	StatusDegraded Status = "degraded"
)
