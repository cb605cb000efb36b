package formatting

// KnownActivityFields lists every activity field FormatActivitySummary
// renders through a dedicated slot. Anything outside this set that follows
// the camelCase convention is surfaced as a custom field.
var KnownActivityFields = fieldSet(
	"name",
	"id",
	"type",
	"startTime",
	"start_date",
	"description",
	"distance",
	"duration",
	"elapsed_time",
	"moving_time",
	"elevationGain",
	"total_elevation_gain",
	"total_elevation_loss",
	"perceived_exertion",
	"icu_rpe",
	"feel",
	"avgPower",
	"icu_average_watts",
	"average_watts",
	"icu_weighted_avg_watts",
	"trainingLoad",
	"icu_training_load",
	"icu_ftp",
	"icu_joules",
	"icu_intensity",
	"icu_power_hr",
	"icu_variability_index",
	"avgHr",
	"average_heartrate",
	"max_heartrate",
	"lthr",
	"icu_resting_hr",
	"decoupling",
	"average_cadence",
	"calories",
	"average_speed",
	"max_speed",
	"average_stride",
	"avg_lr_balance",
	"icu_weight",
	"session_rpe",
	"trainer",
	"average_temp",
	"min_temp",
	"max_temp",
	"average_wind_speed",
	"headwind_percent",
	"tailwind_percent",
	"icu_ctl",
	"icu_atl",
	"trimp",
	"polarization_index",
	"power_load",
	"hr_load",
	"pace_load",
	"icu_efficiency_factor",
	"device_name",
	"power_meter",
	"file_type",
)

// KnownWellnessFields lists every wellness field FormatWellnessEntry renders
// through a dedicated slot.
var KnownWellnessFields = fieldSet(
	"id",
	"date",
	"ctl",
	"atl",
	"rampRate",
	"ctlLoad",
	"atlLoad",
	"sportInfo",
	"updated",
	"weight",
	"restingHR",
	"hrv",
	"hrvSDNN",
	"avgSleepingHR",
	"spO2",
	"systolic",
	"diastolic",
	"respiration",
	"bloodGlucose",
	"lactate",
	"vo2max",
	"bodyFat",
	"abdomen",
	"baevskySI",
	"sleepSecs",
	"sleepHours",
	"sleepQuality",
	"sleepScore",
	"readiness",
	"menstrualPhase",
	"menstrualPhasePredicted",
	"soreness",
	"fatigue",
	"stress",
	"mood",
	"motivation",
	"injury",
	"kcalConsumed",
	"hydrationVolume",
	"hydration",
	"steps",
	"comments",
	"locked",
)
