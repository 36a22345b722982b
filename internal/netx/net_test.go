package netx

import "testing"

func TestJoinURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		file string
		want string
	}{
		{"plain", "http://localhost:5000/uploads/tutors", "cv.pdf", "http://localhost:5000/uploads/tutors/cv.pdf"},
		{"trailing slash on base", "http://localhost:5000/uploads/tutors/", "cv.pdf", "http://localhost:5000/uploads/tutors/cv.pdf"},
		{"leading slash on name", "http://h/docs/", "/id.png", "http://h/docs/id.png"},
		{"spaces escaped", "http://h/docs", "my cv.pdf", "http://h/docs/my%20cv.pdf"},
		{"empty name", "http://h/docs", "", ""},
		{"absolute url kept", "http://h/docs", "https://cdn.example.com/a.pdf", "https://cdn.example.com/a.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinURL(tt.base, tt.file); got != tt.want {
				t.Fatalf("JoinURL(%q, %q) = %q, want %q", tt.base, tt.file, got, tt.want)
			}
		})
	}
}
