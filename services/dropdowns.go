package services

// MunicipalityOptions is the list of municipalities billboards are
// registered under.
var MunicipalityOptions = []string{
	"طرابلس المركز",
	"سوق الجمعة",
	"تاجوراء",
	"عين زارة",
	"أبو سليم",
	"جنزور",
	"السواني",
	"قصر بن غشير",
}

// LevelOptions is the billboard location/quality tiers used as a pricing
// dimension.
var LevelOptions = []string{"A", "B", "C"}

// CategoryOptions is the customer pricing-tier labels.
var CategoryOptions = []string{"عادي", "مسوق", "شركات", "المدينة"}

// AdTypeOptions is the list of advertisement types offered on contracts.
var AdTypeOptions = []string{
	"إعلان تجاري",
	"إعلان خدمي",
	"حملة انتخابية",
	"مناسبات",
}

// CurrencyOptions is the currency codes a contract can be priced in.
var CurrencyOptions = []string{"دينار", "دولار", "يورو"}

// DurationOptions is the contract durations (in months) with a dedicated
// pricing bucket.
var DurationOptions = []int{1, 2, 3, 6, 12}
