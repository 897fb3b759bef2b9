package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-direct-raytracer/pkg/core"
)

// PLYHeader represents the parsed header information from a PLY file
type PLYHeader struct {
	Format      string // "binary_little_endian", "binary_big_endian", or "ascii"
	Version     string // Usually "1.0"
	VertexCount int
	FaceCount   int
	VertexProps []PLYProperty
	FaceProps   []PLYProperty
}

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string // For list properties, the type of the count
	DataType string // For list properties, the type of the data
}

// plyReader reads one scalar value at a time, as text or binary
type plyReader interface {
	read(dataType string) (float64, error)
}

// LoadPLY loads vertex positions and faces from an ascii or binary PLY file.
// Vertex properties other than x, y and z are skipped.
func LoadPLY(filename string) (*MeshData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	data, err := ParsePLY(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PLY file %s: %w", filename, err)
	}
	return data, nil
}

// ParsePLY reads a PLY stream with vertex and face elements
func ParsePLY(r io.Reader) (*MeshData, error) {
	reader := bufio.NewReaderSize(r, 1024*1024)

	header, err := parsePLYHeader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PLY header: %w", err)
	}

	var values plyReader
	switch header.Format {
	case "binary_little_endian":
		values = &binaryPLYReader{r: reader, order: binary.LittleEndian}
	case "binary_big_endian":
		values = &binaryPLYReader{r: reader, order: binary.BigEndian}
	case "ascii":
		scanner := bufio.NewScanner(reader)
		scanner.Split(bufio.ScanWords)
		values = &asciiPLYReader{scanner: scanner}
	default:
		return nil, fmt.Errorf("unsupported PLY format: %s", header.Format)
	}

	return readPLYBody(values, header)
}

// parsePLYHeader parses the header up to and including end_header
func parsePLYHeader(reader *bufio.Reader) (*PLYHeader, error) {
	header := &PLYHeader{
		VertexProps: make([]PLYProperty, 0),
		FaceProps:   make([]PLYProperty, 0),
	}

	var currentElement string
	first := true

	for {
		raw, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("header ended before end_header: %w", err)
		}
		line := strings.TrimSpace(raw)

		if first {
			if line != "ply" {
				return nil, fmt.Errorf("missing ply magic number")
			}
			first = false
			continue
		}
		if line == "end_header" {
			break
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) >= 3 {
				header.Format = parts[1]
				header.Version = parts[2]
			}
		case "comment", "obj_info":
			// Ignore comments
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid element definition: %s", line)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, fmt.Errorf("invalid element count: %s", parts[2])
			}

			currentElement = parts[1]
			switch currentElement {
			case "vertex":
				header.VertexCount = count
			case "face":
				header.FaceCount = count
			default:
				return nil, fmt.Errorf("unsupported element: %s", currentElement)
			}
		case "property":
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("failed to parse property: %w", err)
			}

			switch currentElement {
			case "vertex":
				header.VertexProps = append(header.VertexProps, prop)
			case "face":
				header.FaceProps = append(header.FaceProps, prop)
			default:
				return nil, fmt.Errorf("property outside of an element: %s", line)
			}
		}
	}

	return header, nil
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) < 2 {
		return PLYProperty{}, fmt.Errorf("invalid property definition")
	}

	prop := PLYProperty{}

	if parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, fmt.Errorf("invalid list property definition")
		}
		prop.IsList = true
		prop.ListType = parts[1]
		prop.DataType = parts[2]
		prop.Name = parts[3]
	} else {
		prop.Type = parts[0]
		prop.Name = parts[1]
	}

	return prop, nil
}

// readPLYBody reads vertices then faces. Polygons are fan-triangulated.
func readPLYBody(values plyReader, header *PLYHeader) (*MeshData, error) {
	data := &MeshData{
		Positions: make([]core.Vec3, 0, header.VertexCount),
		Indices:   make([]int, 0, header.FaceCount*3),
	}

	for i := 0; i < header.VertexCount; i++ {
		var position [3]float64
		for _, prop := range header.VertexProps {
			if prop.IsList {
				if _, err := readPLYList(values, prop); err != nil {
					return nil, fmt.Errorf("vertex %d: %w", i, err)
				}
				continue
			}
			value, err := values.read(prop.Type)
			if err != nil {
				return nil, fmt.Errorf("vertex %d property %s: %w", i, prop.Name, err)
			}
			switch prop.Name {
			case "x":
				position[0] = value
			case "y":
				position[1] = value
			case "z":
				position[2] = value
			}
		}
		data.Positions = append(data.Positions, core.NewVec3(position[0], position[1], position[2]))
	}

	for i := 0; i < header.FaceCount; i++ {
		for _, prop := range header.FaceProps {
			if !prop.IsList {
				if _, err := values.read(prop.Type); err != nil {
					return nil, fmt.Errorf("face %d property %s: %w", i, prop.Name, err)
				}
				continue
			}

			list, err := readPLYList(values, prop)
			if err != nil {
				return nil, fmt.Errorf("face %d: %w", i, err)
			}
			if prop.Name != "vertex_indices" && prop.Name != "vertex_index" {
				continue
			}
			if len(list) < 3 {
				return nil, fmt.Errorf("face %d has %d vertices", i, len(list))
			}

			polygon := make([]int, len(list))
			for k, value := range list {
				index := int(value)
				if index < 0 || index >= header.VertexCount {
					return nil, fmt.Errorf("face %d index %d out of range", i, index)
				}
				polygon[k] = index
			}
			data.Indices = appendFan(data.Indices, polygon)
		}
	}

	return data, nil
}

func readPLYList(values plyReader, prop PLYProperty) ([]float64, error) {
	count, err := values.read(prop.ListType)
	if err != nil {
		return nil, fmt.Errorf("failed to read list count for %s: %w", prop.Name, err)
	}
	if count < 0 {
		return nil, fmt.Errorf("negative list count for %s", prop.Name)
	}

	list := make([]float64, int(count))
	for k := range list {
		if list[k], err = values.read(prop.DataType); err != nil {
			return nil, fmt.Errorf("failed to read list item for %s: %w", prop.Name, err)
		}
	}
	return list, nil
}

type binaryPLYReader struct {
	r     io.Reader
	order binary.ByteOrder
}

func (b *binaryPLYReader) read(dataType string) (float64, error) {
	switch dataType {
	case "float", "float32":
		var value float32
		err := binary.Read(b.r, b.order, &value)
		return float64(value), err
	case "double", "float64":
		var value float64
		err := binary.Read(b.r, b.order, &value)
		return value, err
	case "int", "int32":
		var value int32
		err := binary.Read(b.r, b.order, &value)
		return float64(value), err
	case "uint", "uint32":
		var value uint32
		err := binary.Read(b.r, b.order, &value)
		return float64(value), err
	case "short", "int16":
		var value int16
		err := binary.Read(b.r, b.order, &value)
		return float64(value), err
	case "ushort", "uint16":
		var value uint16
		err := binary.Read(b.r, b.order, &value)
		return float64(value), err
	case "char", "int8":
		var value int8
		err := binary.Read(b.r, b.order, &value)
		return float64(value), err
	case "uchar", "uint8":
		var value uint8
		err := binary.Read(b.r, b.order, &value)
		return float64(value), err
	default:
		return 0, fmt.Errorf("unsupported data type: %s", dataType)
	}
}

type asciiPLYReader struct {
	scanner *bufio.Scanner
}

func (a *asciiPLYReader) read(dataType string) (float64, error) {
	if getTypeSize(dataType) == 0 {
		return 0, fmt.Errorf("unsupported data type: %s", dataType)
	}
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.ParseFloat(a.scanner.Text(), 64)
}

// getTypeSize returns the size in bytes of a PLY data type, 0 if unknown
func getTypeSize(dataType string) int {
	switch dataType {
	case "float", "float32", "int", "int32", "uint", "uint32":
		return 4
	case "double", "float64":
		return 8
	case "short", "int16", "ushort", "uint16":
		return 2
	case "char", "int8", "uchar", "uint8":
		return 1
	default:
		return 0
	}
}
