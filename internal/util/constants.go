package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	HeaderRequestID = "X-Request-ID"
	CtxRequestID    = "request_id"
)

// 列表名称，用于日志、指标和链路追踪
const (
	ListingClasses   = "classes"
	ListingSubjects  = "subjects"
	ListingChapters  = "chapters"
	ListingQuestions = "questions"
)
