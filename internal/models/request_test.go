// ABOUTME: Tests for ContentRequest validation and duration-to-words math
// ABOUTME: Verifies the rate table, word band, and supported duration tiers

package models

import (
	"testing"
)

func TestContentRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     ContentRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			req:     ContentRequest{Topic: "morning routines", Duration: 30},
			wantErr: false,
		},
		{
			name:    "empty topic",
			req:     ContentRequest{Topic: "  ", Duration: 30},
			wantErr: true,
		},
		{
			name:    "unsupported duration",
			req:     ContentRequest{Topic: "morning routines", Duration: 42},
			wantErr: true,
		},
		{
			name:    "zero duration",
			req:     ContentRequest{Topic: "morning routines", Duration: 0},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestContentRequest_TargetWordCount(t *testing.T) {
	tests := []struct {
		duration int
		want     int
	}{
		{15, 35},
		{30, 75},
		{45, 115},
		{60, 150},
		{90, 225},
	}

	for _, tt := range tests {
		req := ContentRequest{Topic: "test", Duration: tt.duration}
		if got := req.TargetWordCount(); got != tt.want {
			t.Errorf("TargetWordCount(%ds) = %d, want %d", tt.duration, got, tt.want)
		}
	}
}

func TestContentRequest_WordBand(t *testing.T) {
	// 30 seconds targets 75 words; the ±15% band is [64, 86]
	req := ContentRequest{Topic: "sustainable fashion tips", Duration: 30}
	low, high := req.WordBand()

	if low != 64 {
		t.Errorf("band low = %d, want 64", low)
	}
	if high != 86 {
		t.Errorf("band high = %d, want 86", high)
	}
}

func TestWordsForDuration_UnsupportedReturnsZero(t *testing.T) {
	if got := WordsForDuration(42); got != 0 {
		t.Errorf("WordsForDuration(42) = %d, want 0", got)
	}
}

func TestCountWords(t *testing.T) {
	if got := CountWords("one two  three\nfour"); got != 4 {
		t.Errorf("CountWords = %d, want 4", got)
	}
	if got := CountWords(""); got != 0 {
		t.Errorf("CountWords(empty) = %d, want 0", got)
	}
}
