package easy

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
)

// Archive layout and limits.
const (
	// MaxFileSize is the default size cap for the archive and each of its
	// members (64MB).
	MaxFileSize = 64 * 1024 * 1024

	// channelsFile and productsFile are the archive paths of the two
	// configuration documents.
	channelsFile = "configuration/Channels.xml"
	productsFile = "configuration/Products.xml"
)

// ParseArchive reads an easy export archive from disk and builds the
// Project. Both configuration documents are extracted in memory, validated
// against the export grammar and parsed.
func (p *Parser) ParseArchive(name string) (*Project, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading archive: %w", err)
	}
	return p.ParseArchiveBytes(data)
}

// ParseArchiveBytes builds the Project from an in-memory export archive.
//
// Failure here is always fatal for the conversion: a non-zip input, a
// corrupt archive, a missing configuration document or a structural
// violation means there is nothing meaningful to extract.
func (p *Parser) ParseArchiveBytes(data []byte) (*Project, error) {
	if int64(len(data)) > p.maxFileSize {
		return nil, ErrFileTooLarge
	}
	if !isZipFile(data) {
		return nil, ErrNotArchive
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptArchive, err)
	}

	channelsXML, err := p.readArchiveFile(reader, channelsFile)
	if err != nil {
		return nil, err
	}
	productsXML, err := p.readArchiveFile(reader, productsFile)
	if err != nil {
		return nil, err
	}

	if err := ValidateStructure(channelsXML); err != nil {
		return nil, fmt.Errorf("%s: %w", channelsFile, err)
	}
	if err := ValidateStructure(productsXML); err != nil {
		return nil, fmt.Errorf("%s: %w", productsFile, err)
	}

	products, err := p.ParseProducts(productsXML)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", productsFile, err)
	}
	channels, err := p.ParseChannels(channelsXML)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", channelsFile, err)
	}

	project := &Project{Channels: channels, Products: products}
	p.logger.Info("project parsed",
		"channels", len(project.Channels),
		"products", len(project.Products),
	)
	return project, nil
}

// readArchiveFile extracts one named file from the archive.
func (p *Parser) readArchiveFile(reader *zip.Reader, name string) ([]byte, error) {
	for _, file := range reader.File {
		if path.Clean(file.Name) != name {
			continue
		}
		data, err := readZipFile(file, p.maxFileSize)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrMissingConfiguration, name)
}

// readZipFile reads one archive member, enforcing the size cap.
func readZipFile(f *zip.File, limit int64) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening zip file: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading zip file: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, ErrFileTooLarge
	}
	return data, nil
}

// isZipFile checks the ZIP magic bytes.
func isZipFile(data []byte) bool {
	return len(data) >= 4 && data[0] == 0x50 && data[1] == 0x4B
}
