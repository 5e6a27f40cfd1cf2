package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// 上传文件相关常量
const (
	MimeAudio       = "audio/"
	MimeVideo       = "video/"
	MimeOctetStream = "application/octet-stream"
	MediaKeyPrefix  = "answers/"
)

// FeedbackUnavailable is stored as feedback when the evaluator cannot be reached.
const FeedbackUnavailable = "Feedback not available at the moment."

// 分页默认值
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)
