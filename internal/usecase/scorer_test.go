package usecase

import (
	"math"
	"testing"
)

func TestNewScorer(t *testing.T) {
	t.Run("uses provided thresholds", func(t *testing.T) {
		scorer := NewScorer(ScorerConfig{ProductTypeThreshold: 0.9, OtherTermsThreshold: 0.6})
		if scorer.productTypeThreshold != 0.9 {
			t.Errorf("productTypeThreshold = %v, want 0.9", scorer.productTypeThreshold)
		}
		if scorer.otherTermsThreshold != 0.6 {
			t.Errorf("otherTermsThreshold = %v, want 0.6", scorer.otherTermsThreshold)
		}
	})

	t.Run("falls back to defaults for zero values", func(t *testing.T) {
		scorer := NewScorer(ScorerConfig{})
		if scorer.productTypeThreshold != defaultProductTypeThreshold {
			t.Errorf("productTypeThreshold = %v, want %v", scorer.productTypeThreshold, defaultProductTypeThreshold)
		}
		if scorer.otherTermsThreshold != defaultOtherTermsThreshold {
			t.Errorf("otherTermsThreshold = %v, want %v", scorer.otherTermsThreshold, defaultOtherTermsThreshold)
		}
	})
}

func TestScore(t *testing.T) {
	scorer := NewScorer(ScorerConfig{})

	tests := []struct {
		name        string
		query       string
		description string
		brand       string
		code        string
		want        float64
	}{
		{
			name:        "color mismatch hard rejects",
			query:       "sarı led",
			description: "Kırmızı lamba, halojen, 220V AC",
			brand:       "Weidmuller",
			code:        "WEI-LAMP-R-220V",
			want:        0,
		},
		{
			name:        "product type below threshold rejects despite color match",
			query:       "sarı led",
			description: "Sarı lamba, akkor, 24V DC",
			brand:       "Omron",
			code:        "OMR-LAMP-Y-24V",
			want:        0,
		},
		{
			name:        "exact color and product type",
			query:       "sarı led",
			description: "Sinyal lambası, plastik, sarı, LEDli, 24V DC",
			brand:       "Siemens",
			code:        "SIE-LED-24V-Y",
			want:        1.0,
		},
		{
			name:        "related term earns synonym credit",
			query:       "kırmızı lamba",
			description: "Kırmızı ışık modülü, 24V DC",
			brand:       "Phoenix",
			code:        "PHX-MOD-R",
			want:        0.9, // color 1.0 + synonym ratio 0.8 over 2 required
		},
		{
			name:        "voltage mismatch hard rejects",
			query:       "220v kontaktör",
			description: "Kontaktör, 3 fazlı, 25A, 24V DC bobinli",
			brand:       "Turck",
			code:        "TUR-CNT-24V",
			want:        0,
		},
		{
			name:        "voltage and product type match",
			query:       "220v kontaktör",
			description: "Kontaktör, 3 fazlı, 25A, 220V AC bobinli",
			brand:       "Turck",
			code:        "TUR-CNT-220V",
			want:        1.0,
		},
		{
			name:        "other terms exact word match",
			query:       "endüktif sensör",
			description: "Endüktif sensör, M18, PNP, NO, 8mm algılama",
			brand:       "ABB",
			code:        "ABB-SENSOR-M18",
			want:        1.0,
		},
		{
			name:        "other terms below threshold rejects",
			query:       "hidrolik pompa",
			description: "Acil stop butonu, mantar kafa, kırmızı",
			brand:       "Pilz",
			code:        "PIL-ESTOP-R",
			want:        0,
		},
		{
			name:        "no query tokens scores zero",
			query:       "",
			description: "Sarı lamba, akkor, 24V DC",
			brand:       "Omron",
			code:        "OMR-LAMP-Y-24V",
			want:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := TokenizeQuery(tt.query)
			got := scorer.Score(tokens, tt.description, tt.brand, tt.code)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score(%q vs %q) = %v, want %v", tt.query, tt.description, got, tt.want)
			}
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	scorer := NewScorer(ScorerConfig{})
	tokens := TokenizeQuery("sarı led 24v sinyal")

	first := scorer.Score(tokens, "Sinyal lambası, plastik, sarı, LEDli, 24V DC", "Siemens", "SIE-LED-24V-Y")
	for i := 0; i < 100; i++ {
		got := scorer.Score(tokens, "Sinyal lambası, plastik, sarı, LEDli, 24V DC", "Siemens", "SIE-LED-24V-Y")
		if got != first {
			t.Fatalf("Score not deterministic: run %d returned %v, first run %v", i, got, first)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	scorer := NewScorer(ScorerConfig{})

	queries := []string{
		"sarı led",
		"220v kontaktör role lamba",
		"kırmızı 24v buton acil stop",
		"plastik sinyal",
	}
	descriptions := []string{
		"Sinyal lambası, plastik, sarı, LEDli, 24V DC",
		"Acil stop butonu, mantar kafa, kırmızı",
		"Kontaktör, 3 fazlı, 25A, 220V AC bobinli",
	}

	for _, query := range queries {
		tokens := TokenizeQuery(query)
		for _, description := range descriptions {
			score := scorer.Score(tokens, description, "Marka", "KOD-1")
			if score < 0 || score > 1 {
				t.Errorf("Score(%q vs %q) = %v, outside [0,1]", query, description, score)
			}
		}
	}
}
