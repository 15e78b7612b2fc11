package engine

import (
	"testing"
)

func TestBenchmarksRowCountAndOrder(t *testing.T) {
	rows := Benchmarks(minimalSubmission())
	wantMetrics := []string{
		"Monthly Appointments",
		"Email-to-Appointment Rate (%)",
		"Average Deal Size ($)",
		"Sales Cycle (Days)",
		"Closing Rate (%)",
		"Lead-to-Customer Rate (%)",
		"Website Traffic (Monthly)",
		"Customer Acquisition Cost ($)",
		"Marketing Tools Used",
		"Target Audience Clarity Score",
	}

	if len(rows) != len(wantMetrics) {
		t.Fatalf("got %d benchmark rows, want %d", len(rows), len(wantMetrics))
	}
	for i, want := range wantMetrics {
		if rows[i].Metric != want {
			t.Errorf("row %d metric = %q, want %q", i, rows[i].Metric, want)
		}
	}
}

func TestBenchmarksSaaSSizeMultiplier(t *testing.T) {
	sub := minimalSubmission()
	sub.Industry = "B2B SaaS Software"
	sub.CompanySize = "51-200"

	rows := Benchmarks(sub)
	for _, row := range rows {
		if row.Metric == "Average Deal Size ($)" {
			if row.IndustryAverage != 15600 {
				t.Errorf("deal size industry average = %v, want 15600", row.IndustryAverage)
			}
			if row.TopPerformers != 32500 {
				t.Errorf("deal size top performers = %v, want 32500", row.TopPerformers)
			}
		}
	}
}

func TestBenchmarksRateMetricsIgnoreSize(t *testing.T) {
	small := minimalSubmission()
	small.Industry = "SaaS"
	small.CompanySize = "1-10"

	large := minimalSubmission()
	large.Industry = "SaaS"
	large.CompanySize = "1000+"

	smallRows := Benchmarks(small)
	largeRows := Benchmarks(large)

	rateMetrics := map[string]bool{
		"Email-to-Appointment Rate (%)": true,
		"Sales Cycle (Days)":            true,
		"Closing Rate (%)":              true,
		"Lead-to-Customer Rate (%)":     true,
	}

	for i := range smallRows {
		if !rateMetrics[smallRows[i].Metric] {
			continue
		}
		if smallRows[i].IndustryAverage != largeRows[i].IndustryAverage {
			t.Errorf("%s: industry average varies by company size (%v vs %v)",
				smallRows[i].Metric, smallRows[i].IndustryAverage, largeRows[i].IndustryAverage)
		}
	}
}

func TestBenchmarksDefaults(t *testing.T) {
	rows := Benchmarks(minimalSubmission())
	wantCurrent := map[string]float64{
		"Monthly Appointments":          5,
		"Email-to-Appointment Rate (%)": 2.5,
		"Average Deal Size ($)":         5000,
		"Sales Cycle (Days)":            45,
		"Closing Rate (%)":              10,
		"Lead-to-Customer Rate (%)":     8,
		"Website Traffic (Monthly)":     1000,
		"Customer Acquisition Cost ($)": 1500,
		"Marketing Tools Used":          0,
		"Target Audience Clarity Score": 0,
	}
	for _, row := range rows {
		if want, ok := wantCurrent[row.Metric]; ok && row.CurrentValue != want {
			t.Errorf("%s: current value = %v, want default %v", row.Metric, row.CurrentValue, want)
		}
	}
}

func TestBenchmarksClarityScoreIsFixedReference(t *testing.T) {
	sub := matureSubmission()
	sub.Industry = "SaaS"
	for _, row := range Benchmarks(sub) {
		if row.Metric == "Target Audience Clarity Score" {
			if row.CurrentValue != 9 {
				t.Errorf("clarity current value = %v, want 9", row.CurrentValue)
			}
			if row.IndustryAverage != 5 || row.TopPerformers != 9 {
				t.Errorf("clarity references = %v/%v, want 5/9", row.IndustryAverage, row.TopPerformers)
			}
		}
	}
}
