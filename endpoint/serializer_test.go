package endpoint

import (
	"testing"

	"github.com/kbukum/apiclient/errors"
	"github.com/kbukum/apiclient/httpclient"
)

func TestURLEncodedStringify(t *testing.T) {
	got, err := URLEncodedStringify(map[string]any{
		"k1": "v1",
		"k2": " !@#$%^&*()-=<>:'",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "k1=v1&k2=+!%40%23%24%25%5E%26*()-%3D%3C%3E%3A'"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestURLEncodedStringifyValues(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"empty string", "", ""},
		{"zero number", 0, ""},
		{"empty map", map[string]any{}, ""},
		{"unicode", map[string]string{"name": "José"}, "name=Jos%C3%A9"},
		{"list joins", map[string]any{"ids": []int{1, 2}}, "ids=1%2C2"},
		{"numbers", map[string]any{"n": 1.5, "i": 3}, "i=3&n=1.5"},
		{"list uses indexes", []string{"a", "b c"}, "0=a&1=b+c"},
		{"empty list", []any{}, ""},
		{"struct", struct {
			Name string `json:"full name"`
		}{"a b"}, "full+name=a+b"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := URLEncodedStringify(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestURLEncodedStringifyTypeError(t *testing.T) {
	_, err := URLEncodedStringify("hello")
	if !errors.IsInvalidType(err) {
		t.Fatalf("expected INVALID_TYPE, got %v", err)
	}
	appErr, _ := errors.AsAppError(err)
	if appErr.Message != "Expect: 'object' type, Actual: 'string' type" {
		t.Errorf("unexpected message %q", appErr.Message)
	}
}

func TestURLEncoded(t *testing.T) {
	body, err := URLEncoded(map[string]string{"a": "1 2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	form, ok := body.(httpclient.FormBody)
	if !ok {
		t.Fatalf("expected FormBody, got %T", body)
	}
	if form != "a=1+2" {
		t.Errorf("expected a=1+2, got %q", form)
	}
}

func TestMultipart(t *testing.T) {
	body, err := Multipart(map[string]any{
		"tags":   []string{"a", "b"},
		"title":  "report",
		"upload": []byte("raw"),
		"doc":    httpclient.FileField{FileName: "doc.txt", Data: []byte("text")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mp, ok := body.(*httpclient.MultipartBody)
	if !ok {
		t.Fatalf("expected *MultipartBody, got %T", body)
	}
	if got := mp.Values("tags"); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("expected one part per element, got %v", got)
	}
	if got := mp.Values("title"); len(got) != 1 || got[0] != "report" {
		t.Errorf("expected title part, got %v", got)
	}
	if len(mp.Files) != 2 {
		t.Fatalf("expected 2 file parts, got %d", len(mp.Files))
	}
	if mp.Files[0].FieldName != "doc" || mp.Files[0].FileName != "doc.txt" {
		t.Errorf("expected doc file part named by key, got %+v", mp.Files[0])
	}
	if mp.Files[1].FieldName != "upload" || string(mp.Files[1].Data) != "raw" {
		t.Errorf("expected upload file part, got %+v", mp.Files[1])
	}
}

func TestMultipartPassThrough(t *testing.T) {
	in := (&httpclient.MultipartBody{}).AddField("x", "1")
	out, err := Multipart(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != in {
		t.Error("expected existing multipart body to pass through")
	}
}

func TestMultipartRejectsNonObject(t *testing.T) {
	if _, err := Multipart(12); !errors.IsInvalidArgument(err) {
		t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
	}
}

func TestEncodeURIComponent(t *testing.T) {
	tests := map[string]string{
		"abcXYZ019": "abcXYZ019",
		"-_.!~*'()": "-_.!~*'()",
		" ":         "%20",
		"/?&=#+":    "%2F%3F%26%3D%23%2B",
		"é中":        "%C3%A9%E4%B8%AD",
	}
	for in, want := range tests {
		if got := encodeURIComponent(in); got != want {
			t.Errorf("encodeURIComponent(%q) = %q, want %q", in, got, want)
		}
	}
}
