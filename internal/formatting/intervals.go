package formatting

import "fmt"

// FormatIntervals formats an interval-analysis payload: a header, one
// numbered block per interval and one block per interval group. Missing
// interval metrics render as 0 rather than "N/A"; downstream consumers rely
// on the numeric sentinel here.
func FormatIntervals(intervalsData map[string]any) string {
	result := fmt.Sprintf(`Intervals Analysis:

ID: %s
Analyzed: %s

`,
		field(intervalsData, "N/A", "id"),
		field(intervalsData, "N/A", "analyzed"),
	)

	if intervals, ok := intervalsData["icu_intervals"].([]any); ok && len(intervals) > 0 {
		result += "Individual Intervals:\n\n"
		for i, entry := range intervals {
			interval, ok := entry.(map[string]any)
			if !ok {
				interval = map[string]any{}
			}
			result += formatInterval(i+1, interval)
		}
	}

	if groups, ok := intervalsData["icu_groups"].([]any); ok && len(groups) > 0 {
		result += "Interval Groups:\n\n"
		for i, entry := range groups {
			group, ok := entry.(map[string]any)
			if !ok {
				group = map[string]any{}
			}
			result += formatIntervalGroup(i+1, group)
		}
	}

	return result
}

func formatInterval(index int, interval map[string]any) string {
	return fmt.Sprintf(`[%d] %s (%s)
Duration: %s seconds (moving: %s seconds)
Distance: %s meters
Start-End Indices: %s-%s

Power Metrics:
  Average Power: %s watts (%s W/kg)
  Max Power: %s watts (%s W/kg)
  Weighted Avg Power: %s watts
  Intensity: %s
  Training Load: %s
  Joules: %s
  Joules > FTP: %s
  Power Zone: %s (%s-%s watts)
  W' Balance: Start %s, End %s
  L/R Balance: %s
  Variability: %s
  Torque: Avg %s, Min %s, Max %s

Heart Rate & Metabolic:
  Heart Rate: Avg %s, Min %s, Max %s bpm
  Decoupling: %s
  DFA α1: %s
  Respiration: %s breaths/min
  EPOC: %s
  SmO2: %s%% / %s%%
  THb: %s / %s

Speed & Cadence:
  Speed: Avg %s, Min %s, Max %s m/s
  GAP: %s m/s
  Cadence: Avg %s, Min %s, Max %s rpm
  Stride: %s

Elevation & Environment:
  Elevation Gain: %s meters
  Altitude: Min %s, Max %s meters
  Gradient: %s%%
  Temperature: %s°C (Weather: %s°C, Feels like: %s°C)
  Wind: Speed %s km/h, Gust %s km/h, Direction %s°
  Headwind: %s%%, Tailwind: %s%%

`,
		index,
		field(interval, fmt.Sprintf("Interval %d", index), "label"),
		field(interval, "Unknown", "type"),
		field(interval, 0, "elapsed_time"),
		field(interval, 0, "moving_time"),
		field(interval, 0, "distance"),
		field(interval, 0, "start_index"),
		field(interval, 0, "end_index"),
		field(interval, 0, "average_watts"),
		field(interval, 0, "average_watts_kg"),
		field(interval, 0, "max_watts"),
		field(interval, 0, "max_watts_kg"),
		field(interval, 0, "weighted_average_watts"),
		field(interval, 0, "intensity"),
		field(interval, 0, "training_load"),
		field(interval, 0, "joules"),
		field(interval, 0, "joules_above_ftp"),
		field(interval, "N/A", "zone"),
		field(interval, 0, "zone_min_watts"),
		field(interval, 0, "zone_max_watts"),
		field(interval, 0, "wbal_start"),
		field(interval, 0, "wbal_end"),
		field(interval, 0, "avg_lr_balance"),
		field(interval, 0, "w5s_variability"),
		field(interval, 0, "average_torque"),
		field(interval, 0, "min_torque"),
		field(interval, 0, "max_torque"),
		field(interval, 0, "average_heartrate"),
		field(interval, 0, "min_heartrate"),
		field(interval, 0, "max_heartrate"),
		field(interval, 0, "decoupling"),
		field(interval, 0, "average_dfa_a1"),
		field(interval, 0, "average_respiration"),
		field(interval, 0, "average_epoc"),
		field(interval, 0, "average_smo2"),
		field(interval, 0, "average_smo2_2"),
		field(interval, 0, "average_thb"),
		field(interval, 0, "average_thb_2"),
		field(interval, 0, "average_speed"),
		field(interval, 0, "min_speed"),
		field(interval, 0, "max_speed"),
		field(interval, 0, "gap"),
		field(interval, 0, "average_cadence"),
		field(interval, 0, "min_cadence"),
		field(interval, 0, "max_cadence"),
		field(interval, 0, "average_stride"),
		field(interval, 0, "total_elevation_gain"),
		field(interval, 0, "min_altitude"),
		field(interval, 0, "max_altitude"),
		field(interval, 0, "average_gradient"),
		field(interval, 0, "average_temp"),
		field(interval, 0, "average_weather_temp"),
		field(interval, 0, "average_feels_like"),
		field(interval, 0, "average_wind_speed"),
		field(interval, 0, "average_wind_gust"),
		field(interval, 0, "prevailing_wind_deg"),
		field(interval, 0, "headwind_percent"),
		field(interval, 0, "tailwind_percent"),
	)
}

func formatIntervalGroup(index int, group map[string]any) string {
	return fmt.Sprintf(`Group: %s (Contains %s intervals)
Duration: %s seconds (moving: %s seconds)
Distance: %s meters
Start-End Indices: %s-N/A

Power: Avg %s watts (%s W/kg), Max %s watts
W. Avg Power: %s watts, Intensity: %s
Heart Rate: Avg %s, Max %s bpm
Speed: Avg %s, Max %s m/s
Cadence: Avg %s, Max %s rpm

`,
		field(group, fmt.Sprintf("Group %d", index), "id"),
		field(group, 0, "count"),
		field(group, 0, "elapsed_time"),
		field(group, 0, "moving_time"),
		field(group, 0, "distance"),
		field(group, 0, "start_index"),
		field(group, 0, "average_watts"),
		field(group, 0, "average_watts_kg"),
		field(group, 0, "max_watts"),
		field(group, 0, "weighted_average_watts"),
		field(group, 0, "intensity"),
		field(group, 0, "average_heartrate"),
		field(group, 0, "max_heartrate"),
		field(group, 0, "average_speed"),
		field(group, 0, "max_speed"),
		field(group, 0, "average_cadence"),
		field(group, 0, "max_cadence"),
	)
}
