package deepseek

// Temperature presets recommended by DeepSeek for common workloads.
// TemperatureGeneralConversation is the default for new clients.
const (
	TemperatureCoding              = 0.0
	TemperatureDataAnalysis        = 1.0
	TemperatureGeneralConversation = 1.3
	TemperatureTranslation         = 1.3
	TemperatureCreativeWriting     = 1.5
)
