package formatting

import (
	"fmt"
	"math"
	"strings"
)

// sleepQualityLabels maps the 1-4 quality codes the API reports to labels.
// Unrecognized codes render as their raw value.
var sleepQualityLabels = map[int]string{
	1: "Great",
	2: "Good",
	3: "Average",
	4: "Poor",
}

func wellnessTrainingMetrics(entries map[string]any) []string {
	var lines []string
	for _, m := range []struct{ key, label string }{
		{"ctl", "Fitness (CTL)"},
		{"atl", "Fatigue (ATL)"},
		{"rampRate", "Ramp Rate"},
		{"ctlLoad", "CTL Load"},
		{"atlLoad", "ATL Load"},
	} {
		if value := get(entries, m.key, nil); value != nil {
			lines = append(lines, fmt.Sprintf("- %s: %s", m.label, stringify(value)))
		}
	}
	return lines
}

func wellnessSportInfo(entries map[string]any) []string {
	var lines []string
	sports, _ := get(entries, "sportInfo", nil).([]any)
	for _, entry := range sports {
		sport, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if eftp := get(sport, "eftp", nil); eftp != nil {
			lines = append(lines, fmt.Sprintf("- %s: eFTP = %s",
				stringify(get(sport, "type", nil)), stringify(eftp)))
		}
	}
	return lines
}

func wellnessVitalSigns(entries map[string]any) []string {
	var lines []string
	for _, m := range []struct{ key, label, unit string }{
		{"weight", "Weight", "kg"},
		{"restingHR", "Resting HR", "bpm"},
		{"hrv", "HRV", ""},
		{"hrvSDNN", "HRV SDNN", ""},
		{"avgSleepingHR", "Average Sleeping HR", "bpm"},
		{"spO2", "SpO2", "%"},
		{"systolic", "Systolic BP", ""},
		{"diastolic", "Diastolic BP", ""},
		{"respiration", "Respiration", "breaths/min"},
		{"bloodGlucose", "Blood Glucose", "mmol/L"},
		{"lactate", "Lactate", "mmol/L"},
		{"vo2max", "VO2 Max", "ml/kg/min"},
		{"bodyFat", "Body Fat", "%"},
		{"abdomen", "Abdomen", "cm"},
		{"baevskySI", "Baevsky Stress Index", ""},
	} {
		value := get(entries, m.key, nil)
		if value == nil {
			continue
		}
		// Systolic and diastolic collapse into one blood pressure line.
		if m.key == "systolic" && get(entries, "diastolic", nil) != nil {
			lines = append(lines, fmt.Sprintf("- Blood Pressure: %s/%s mmHg",
				stringify(value), stringify(get(entries, "diastolic", nil))))
			continue
		}
		if m.key == "systolic" || m.key == "diastolic" {
			continue
		}
		suffix := ""
		if m.unit != "" {
			suffix = " " + m.unit
		}
		lines = append(lines, fmt.Sprintf("- %s: %s%s", m.label, stringify(value), suffix))
	}
	return lines
}

func wellnessSleepRecovery(entries map[string]any) []string {
	var lines []string

	if secs := get(entries, "sleepSecs", nil); secs != nil {
		if f, ok := toNumber(secs); ok {
			lines = append(lines, fmt.Sprintf("  Sleep: %.2f hours", f/3600))
		}
	} else if hours := get(entries, "sleepHours", nil); hours != nil {
		lines = append(lines, fmt.Sprintf("  Sleep: %s hours", stringify(hours)))
	}

	if quality := get(entries, "sleepQuality", nil); quality != nil {
		label := stringify(quality)
		if f, ok := toNumber(quality); ok && f == math.Trunc(f) {
			if known, found := sleepQualityLabels[int(f)]; found {
				label = known
			}
		}
		lines = append(lines, fmt.Sprintf("  Sleep Quality: %s (%s)", stringify(quality), label))
	}

	if score := get(entries, "sleepScore", nil); score != nil {
		lines = append(lines, fmt.Sprintf("  Device Sleep Score: %s/100", stringify(score)))
	}

	if readiness := get(entries, "readiness", nil); readiness != nil {
		lines = append(lines, fmt.Sprintf("  Readiness: %s/10", stringify(readiness)))
	}

	return lines
}

func wellnessMenstrualTracking(entries map[string]any) []string {
	var lines []string
	if phase := get(entries, "menstrualPhase", nil); phase != nil {
		lines = append(lines, "  Menstrual Phase: "+capitalize(stringify(phase)))
	}
	if predicted := get(entries, "menstrualPhasePredicted", nil); predicted != nil {
		lines = append(lines, "  Predicted Phase: "+capitalize(stringify(predicted)))
	}
	return lines
}

func wellnessSubjectiveFeelings(entries map[string]any) []string {
	var lines []string
	for _, m := range []struct{ key, label string }{
		{"soreness", "Soreness"},
		{"fatigue", "Fatigue"},
		{"stress", "Stress"},
		{"mood", "Mood"},
		{"motivation", "Motivation"},
		{"injury", "Injury Level"},
	} {
		if value := get(entries, m.key, nil); value != nil {
			lines = append(lines, fmt.Sprintf("  %s: %s/10", m.label, stringify(value)))
		}
	}
	return lines
}

func wellnessNutritionHydration(entries map[string]any) []string {
	var lines []string
	for _, m := range []struct{ key, label string }{
		{"kcalConsumed", "Calories Consumed"},
		{"hydrationVolume", "Hydration Volume"},
	} {
		if value := get(entries, m.key, nil); value != nil {
			lines = append(lines, fmt.Sprintf("- %s: %s", m.label, stringify(value)))
		}
	}
	if hydration := get(entries, "hydration", nil); hydration != nil {
		lines = append(lines, fmt.Sprintf("  Hydration Score: %s/10", stringify(hydration)))
	}
	return lines
}

// FormatWellnessEntry formats one wellness entry into a sectioned report:
// training metrics, per-sport eFTP, vital signs, sleep and recovery,
// menstrual tracking, subjective feelings, nutrition, steps, comments and
// locked status, plus any custom fields.
func FormatWellnessEntry(entries map[string]any) string {
	// The entry id is its date.
	lines := []string{"Wellness Data:", "Date: " + field(entries, "N/A", "id"), ""}

	lines = appendSection(lines, wellnessTrainingMetrics(entries), "Training Metrics:")
	lines = appendSection(lines, wellnessSportInfo(entries), "Sport-Specific Info:")
	lines = appendSection(lines, wellnessVitalSigns(entries), "Vital Signs:")
	lines = appendSection(lines, wellnessSleepRecovery(entries), "Sleep & Recovery:")
	lines = appendSection(lines, wellnessMenstrualTracking(entries), "Menstrual Tracking:")
	lines = appendSection(lines, wellnessSubjectiveFeelings(entries), "Subjective Feelings:")
	lines = appendSection(lines, wellnessNutritionHydration(entries), "Nutrition & Hydration:")

	if steps := get(entries, "steps", nil); steps != nil {
		lines = append(lines, "Activity:", "- Steps: "+stringify(steps), "")
	}

	if comments := get(entries, "comments", nil); comments != nil && stringify(comments) != "" {
		lines = append(lines, "Comments: "+stringify(comments))
	}
	if _, present := entries["locked"]; present {
		status := "Unlocked"
		if truthy(entries["locked"]) {
			status = "Locked"
		}
		lines = append(lines, "Status: "+status)
	}

	customFields := DetectCustomFields(entries, KnownWellnessFields)
	if customFieldLines := FormatCustomFields(customFields); len(customFieldLines) > 0 {
		lines = append(lines, "", "Custom Fields:")
		lines = append(lines, customFieldLines...)
	}

	return strings.Join(lines, "\n")
}
