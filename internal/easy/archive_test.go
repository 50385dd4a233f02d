package easy

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func buildArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("creating archive entry %s: %v", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("writing archive entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing archive: %v", err)
	}
	return buf.Bytes()
}

func exportArchive(t *testing.T) []byte {
	t.Helper()
	return buildArchive(t, map[string]string{
		channelsFile: channelsFixture,
		productsFile: productsFixture,
	})
}

func TestParseArchiveBytes(t *testing.T) {
	parser := NewParser()

	project, err := parser.ParseArchiveBytes(exportArchive(t))
	if err != nil {
		t.Fatalf("ParseArchiveBytes() error = %v", err)
	}

	if len(project.Channels) != 3 {
		t.Errorf("project has %d channels, want 3", len(project.Channels))
	}
	if len(project.Products) != 2 {
		t.Errorf("project has %d products, want 2", len(project.Products))
	}
	if got := project.Channels[0].Name; got != "Living Room" {
		t.Errorf("first channel = %q, want %q", got, "Living Room")
	}
	if got := project.ProductIndex()["SN-100"].Name; got != "Dimmer Module" {
		t.Errorf("product SN-100 = %q, want %q", got, "Dimmer Module")
	}
}

func TestParseArchiveBytesNotZip(t *testing.T) {
	parser := NewParser()

	_, err := parser.ParseArchiveBytes([]byte("this is not an archive"))
	if !errors.Is(err, ErrNotArchive) {
		t.Errorf("ParseArchiveBytes() error = %v, want %v", err, ErrNotArchive)
	}
}

func TestParseArchiveBytesCorrupt(t *testing.T) {
	parser := NewParser()

	// Correct magic bytes followed by garbage.
	data := append([]byte{0x50, 0x4B, 0x03, 0x04}, bytes.Repeat([]byte{0xFF}, 64)...)
	_, err := parser.ParseArchiveBytes(data)
	if !errors.Is(err, ErrCorruptArchive) {
		t.Errorf("ParseArchiveBytes() error = %v, want %v", err, ErrCorruptArchive)
	}
}

func TestParseArchiveBytesMissingChannels(t *testing.T) {
	parser := NewParser()

	data := buildArchive(t, map[string]string{productsFile: productsFixture})
	_, err := parser.ParseArchiveBytes(data)
	if !errors.Is(err, ErrMissingConfiguration) {
		t.Errorf("ParseArchiveBytes() error = %v, want %v", err, ErrMissingConfiguration)
	}
}

func TestParseArchiveBytesMissingProducts(t *testing.T) {
	parser := NewParser()

	data := buildArchive(t, map[string]string{channelsFile: channelsFixture})
	_, err := parser.ParseArchiveBytes(data)
	if !errors.Is(err, ErrMissingConfiguration) {
		t.Errorf("ParseArchiveBytes() error = %v, want %v", err, ErrMissingConfiguration)
	}
}

func TestParseArchiveBytesArchiveTooLarge(t *testing.T) {
	parser := NewParser()
	parser.SetMaxFileSize(16)

	_, err := parser.ParseArchiveBytes(bytes.Repeat([]byte("a"), 32))
	if !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("ParseArchiveBytes() error = %v, want %v", err, ErrFileTooLarge)
	}
}

func TestParseArchiveBytesMemberTooLarge(t *testing.T) {
	parser := NewParser()
	parser.SetMaxFileSize(4096)

	// Highly compressible payloads keep the archive itself below the
	// limit while both members inflate past it.
	oversized := string(bytes.Repeat([]byte("a"), 64*1024))
	data := buildArchive(t, map[string]string{
		channelsFile: oversized,
		productsFile: oversized,
	})
	if int64(len(data)) > 4096 {
		t.Fatalf("fixture archive is %d bytes, expected below the limit", len(data))
	}

	_, err := parser.ParseArchiveBytes(data)
	if !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("ParseArchiveBytes() error = %v, want %v", err, ErrFileTooLarge)
	}
}

func TestParseArchiveBytesSchemaViolation(t *testing.T) {
	parser := NewParser()

	data := buildArchive(t, map[string]string{
		channelsFile: `<configurations><device name="1"/></configurations>`,
		productsFile: productsFixture,
	})
	_, err := parser.ParseArchiveBytes(data)
	if !errors.Is(err, ErrSchemaViolation) {
		t.Errorf("ParseArchiveBytes() error = %v, want %v", err, ErrSchemaViolation)
	}
}

func TestParseArchiveBytesMalformedMember(t *testing.T) {
	parser := NewParser()

	data := buildArchive(t, map[string]string{
		channelsFile: `<configurations><config name="1">`,
		productsFile: productsFixture,
	})
	_, err := parser.ParseArchiveBytes(data)
	if !errors.Is(err, ErrMalformedXML) {
		t.Errorf("ParseArchiveBytes() error = %v, want %v", err, ErrMalformedXML)
	}
}

func TestParseArchive(t *testing.T) {
	parser := NewParser()

	path := filepath.Join(t.TempDir(), "export.txa")
	if err := os.WriteFile(path, exportArchive(t), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	project, err := parser.ParseArchive(path)
	if err != nil {
		t.Fatalf("ParseArchive() error = %v", err)
	}
	if len(project.Channels) != 3 || len(project.Products) != 2 {
		t.Errorf("project = %d channels / %d products, want 3 / 2",
			len(project.Channels), len(project.Products))
	}
}

func TestParseArchiveMissingFile(t *testing.T) {
	parser := NewParser()

	if _, err := parser.ParseArchive(filepath.Join(t.TempDir(), "absent.txa")); err == nil {
		t.Error("ParseArchive() should fail for a missing file")
	}
}
