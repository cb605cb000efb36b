package formatting

import (
	"fmt"
	"strings"
)

// activityStartTime resolves the activity start time, preferring the
// camelCase alias over the underscored one.
func activityStartTime(activity map[string]any) string {
	return formatStartTime(getChain(activity, "Unknown", "startTime", "start_date"))
}

// activityRPE renders the rate of perceived exertion on a /10 scale.
func activityRPE(activity map[string]any) string {
	rpe := get(activity, "perceived_exertion", nil)
	if rpe == nil {
		rpe = get(activity, "icu_rpe", "N/A")
	}
	if _, ok := toNumber(rpe); ok {
		return stringify(rpe) + "/10"
	}
	return stringify(rpe)
}

// activityFeel renders the subjective feel value on a /5 scale.
func activityFeel(activity map[string]any) string {
	feel := get(activity, "feel", "N/A")
	if _, ok := toNumber(feel); ok {
		return stringify(feel) + "/5"
	}
	return stringify(feel)
}

// FormatActivitySummary formats an activity payload into a readable report
// covering identity, distance, power, heart rate, environment, training load
// and device data, followed by any custom fields the API attached.
func FormatActivitySummary(activity map[string]any) string {
	startTime := activityStartTime(activity)
	rpe := activityRPE(activity)
	feel := activityFeel(activity)

	customFields := DetectCustomFields(activity, KnownActivityFields)
	customFieldLines := FormatCustomFields(customFields)

	result := fmt.Sprintf(`
Activity: %s
ID: %s
Type: %s
Date: %s
Description: %s
Distance: %s meters
Duration: %s seconds
Moving Time: %s seconds
Elevation Gain: %s meters
Elevation Loss: %s meters

Power Data:
Average Power: %s watts
Weighted Avg Power: %s watts
Training Load: %s
FTP: %s watts
Kilojoules: %s
Intensity: %s
Power:HR Ratio: %s
Variability Index: %s

Heart Rate Data:
Average Heart Rate: %s bpm
Max Heart Rate: %s bpm
LTHR: %s bpm
Resting HR: %s bpm
Decoupling: %s

Other Metrics:
Cadence: %s rpm
Calories: %s
Average Speed: %s m/s
Max Speed: %s m/s
Average Stride: %s
L/R Balance: %s
Weight: %s kg
RPE: %s
Session RPE: %s
Feel: %s

Environment:
Trainer: %s
Average Temp: %s°C
Min Temp: %s°C
Max Temp: %s°C
Avg Wind Speed: %s km/h
Headwind %%: %s%%
Tailwind %%: %s%%

Training Metrics:
Fitness (CTL): %s
Fatigue (ATL): %s
TRIMP: %s
Polarization Index: %s
Power Load: %s
HR Load: %s
Pace Load: %s
Efficiency Factor: %s

Device Info:
Device: %s
Power Meter: %s
File Type: %s`,
		field(activity, "Unnamed", "name"),
		field(activity, "N/A", "id"),
		field(activity, "Unknown", "type"),
		startTime,
		field(activity, "N/A", "description"),
		field(activity, 0, "distance"),
		field(activity, 0, "duration", "elapsed_time"),
		field(activity, "N/A", "moving_time"),
		field(activity, 0, "elevationGain", "total_elevation_gain"),
		field(activity, "N/A", "total_elevation_loss"),
		field(activity, "N/A", "avgPower", "icu_average_watts", "average_watts"),
		field(activity, "N/A", "icu_weighted_avg_watts"),
		field(activity, "N/A", "trainingLoad", "icu_training_load"),
		field(activity, "N/A", "icu_ftp"),
		field(activity, "N/A", "icu_joules"),
		field(activity, "N/A", "icu_intensity"),
		field(activity, "N/A", "icu_power_hr"),
		field(activity, "N/A", "icu_variability_index"),
		field(activity, "N/A", "avgHr", "average_heartrate"),
		field(activity, "N/A", "max_heartrate"),
		field(activity, "N/A", "lthr"),
		field(activity, "N/A", "icu_resting_hr"),
		field(activity, "N/A", "decoupling"),
		field(activity, "N/A", "average_cadence"),
		field(activity, "N/A", "calories"),
		field(activity, "N/A", "average_speed"),
		field(activity, "N/A", "max_speed"),
		field(activity, "N/A", "average_stride"),
		field(activity, "N/A", "avg_lr_balance"),
		field(activity, "N/A", "icu_weight"),
		rpe,
		field(activity, "N/A", "session_rpe"),
		feel,
		field(activity, "N/A", "trainer"),
		field(activity, "N/A", "average_temp"),
		field(activity, "N/A", "min_temp"),
		field(activity, "N/A", "max_temp"),
		field(activity, "N/A", "average_wind_speed"),
		field(activity, "N/A", "headwind_percent"),
		field(activity, "N/A", "tailwind_percent"),
		field(activity, "N/A", "icu_ctl"),
		field(activity, "N/A", "icu_atl"),
		field(activity, "N/A", "trimp"),
		field(activity, "N/A", "polarization_index"),
		field(activity, "N/A", "power_load"),
		field(activity, "N/A", "hr_load"),
		field(activity, "N/A", "pace_load"),
		field(activity, "N/A", "icu_efficiency_factor"),
		field(activity, "N/A", "device_name"),
		field(activity, "N/A", "power_meter"),
		field(activity, "N/A", "file_type"),
	)

	if len(customFieldLines) > 0 {
		result += "\n\nCustom Fields:\n" + strings.Join(customFieldLines, "\n")
	}

	return result
}

// FormatWorkout formats a planned workout payload into a readable string.
func FormatWorkout(workout map[string]any) string {
	intervals, _ := get(workout, "intervals", []any{}).([]any)

	return fmt.Sprintf(`
Workout: %s
Description: %s
Sport: %s
Duration: %s seconds
TSS: %s
Intervals: %d
`,
		field(workout, "Unnamed", "name"),
		field(workout, "No description", "description"),
		field(workout, "Unknown", "sport"),
		field(workout, 0, "duration"),
		field(workout, "N/A", "tss"),
		len(intervals),
	)
}
