package util

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogGameStateGlobal | LogNetwork | LogAI | LogSystem

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
)

type LogCategory int

const (
	LogNetwork LogCategory = 1 << iota
	LogSystem
	LogUnitState
	LogGameStateGlobal
	LogAI
)

func SetLogLevel(lvl LogLevel) {
	GLOBAL_LOG_LEVEL = lvl
}

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	println(txt)
}

func LogNetworkInfo(txt string) {
	log(LogNetwork, LogLevelInfo, txt)
}

func LogNetworkDebug(txt string) {
	log(LogNetwork, LogLevelDebug, txt)
}

func LogNetworkWarning(txt string) {
	log(LogNetwork, LogLevelWarning, txt)
}

func LogNetworkError(txt string) {
	log(LogNetwork, LogLevelError, txt)
}

func LogSystemInfo(txt string) {
	log(LogSystem, LogLevelInfo, txt)
}

func LogGameInfo(txt string) {
	log(LogGameStateGlobal, LogLevelInfo, txt)
}

func LogGameDebug(txt string) {
	log(LogGameStateGlobal, LogLevelDebug, txt)
}

func LogGameError(txt string) {
	log(LogGameStateGlobal, LogLevelError, txt)
}

func LogUnitDebug(txt string) {
	log(LogUnitState, LogLevelDebug, txt)
}

func LogAIInfo(txt string) {
	log(LogAI, LogLevelInfo, txt)
}

func LogAIDebug(txt string) {
	log(LogAI, LogLevelDebug, txt)
}
