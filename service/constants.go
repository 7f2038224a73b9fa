package service

const (
	MaxAnnualRatePercent = 100.0           // 100% anual
	MaxAmount            = 1_000_000_000.0 // 1 billón
	MaxYears             = 60
	MinYears             = 1
	MaxStages            = MaxYears // cada etapa dura al menos un año

	cacheKeyPrefix = "projection:v1:"
)
