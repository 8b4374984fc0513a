package ui

import "testing"

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1 KB"},
		{1536, "1 KB"},
		{2048, "2 KB"},
		{1024 * 1024, "1 MB"},
		{5*1024*1024 + 300*1024, "5 MB"},
		{3 * 1024 * 1024 * 1024, "3 GB"},
		{2 * 1024 * 1024 * 1024 * 1024, "2 TB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
