// Command soldump encodes a stream-output description and prints the
// resulting command payload words.
//
// Usage:
//
//	soldump [options] <config.yaml>
//
// Examples:
//
//	soldump so.yaml              # Encode for Gen8 (default)
//	soldump -gen 7 so.yaml       # Encode for Gen7
//	soldump -v so.yaml           # Log encoder activity
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/solstate"
	"github.com/gogpu/solstate/genhw"
)

var (
	gen     = flag.Int("gen", 8, "hardware generation (6, 7 or 8)")
	verbose = flag.Bool("v", false, "log encoder activity")
	version = flag.Bool("version", false, "print version")
)

const soldumpVersion = "0.1.0-dev"

// fileConfig is the YAML form of a stream-output description.
type fileConfig struct {
	VUEAttrCount  uint8        `yaml:"vueAttrCount"`
	RenderStream  uint8        `yaml:"renderStream"`
	Reorder       string       `yaml:"tristripReorder"` // "leading" or "trailing"
	SOEnable      bool         `yaml:"soEnable"`
	RenderDisable bool         `yaml:"renderDisable"`
	StatsEnable   bool         `yaml:"statsEnable"`
	BufferStrides []uint16     `yaml:"bufferStrides"`
	Streams       []fileStream `yaml:"streams"`
}

type fileStream struct {
	VUEReadBase  uint8      `yaml:"vueReadBase"`
	VUEReadCount uint8      `yaml:"vueReadCount"`
	Decls        []fileDecl `yaml:"decls"`
}

type fileDecl struct {
	Attr           uint8 `yaml:"attr"`
	ComponentBase  uint8 `yaml:"componentBase"`
	ComponentCount uint8 `yaml:"componentCount"`
	Buffer         uint8 `yaml:"buffer"`
	Hole           bool  `yaml:"hole"`
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("soldump version %s\n", soldumpVersion)
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no config file specified")
		usage()
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		solstate.SetLogger(logger)
	}

	info, err := loadConfig(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dev := genhw.Gen(*gen)

	var so solstate.State
	if err := solstate.Init(&so, dev, info); err != nil {
		fmt.Fprintf(os.Stderr, "Encoding error: %v\n", err)
		os.Exit(1)
	}

	dump(&so, dev)
}

// loadConfig reads a YAML description and converts it to a Config with
// declaration storage allocated.
func loadConfig(path string) (*solstate.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if len(fc.BufferStrides) > genhw.MaxBufferCount {
		return nil, fmt.Errorf("config lists %d buffer strides, hardware has %d buffers",
			len(fc.BufferStrides), genhw.MaxBufferCount)
	}
	if len(fc.Streams) > genhw.MaxStreamCount {
		return nil, fmt.Errorf("config lists %d streams, hardware has %d",
			len(fc.Streams), genhw.MaxStreamCount)
	}

	info := &solstate.Config{
		VUEAttrCount:  fc.VUEAttrCount,
		RenderStream:  fc.RenderStream,
		SOEnable:      fc.SOEnable,
		RenderDisable: fc.RenderDisable,
		StatsEnable:   fc.StatsEnable,
	}

	switch fc.Reorder {
	case "", "leading":
		info.TristripReorder = solstate.TristripReorderLeading
	case "trailing":
		info.TristripReorder = solstate.TristripReorderTrailing
	default:
		return nil, fmt.Errorf("unknown tristrip reorder mode %q", fc.Reorder)
	}

	copy(info.BufferStrides[:], fc.BufferStrides)

	maxDeclCount := 0
	for i, fs := range fc.Streams {
		stream := solstate.StreamConfig{
			VUEReadBase:  fs.VUEReadBase,
			VUEReadCount: fs.VUEReadCount,
		}
		for _, fd := range fs.Decls {
			stream.Decls = append(stream.Decls, solstate.Decl{
				Attr:           fd.Attr,
				ComponentBase:  fd.ComponentBase,
				ComponentCount: fd.ComponentCount,
				Buffer:         fd.Buffer,
				IsHole:         fd.Hole,
			})
		}
		if len(stream.Decls) > maxDeclCount {
			maxDeclCount = len(stream.Decls)
		}
		info.Streams[i] = stream
	}

	info.DeclData = make([][2]uint32, solstate.DeclDataLen(maxDeclCount))

	return info, nil
}

// dump prints the encoded payload words.
func dump(so *solstate.State, dev genhw.Gen) {
	fmt.Printf("# %s stream-output state\n", dev)
	fmt.Println("3DSTATE_STREAMOUT:")
	fmt.Printf("  DW1 0x%08x\n", so.So[0])
	fmt.Printf("  DW2 0x%08x\n", so.So[1])
	if dev >= genhw.Gen8 {
		fmt.Printf("  DW3 0x%08x\n", so.So[2])
		fmt.Printf("  DW4 0x%08x\n", so.So[3])
	}
	fmt.Println("3DSTATE_SO_DECL_LIST:")
	fmt.Printf("  DW1 0x%08x\n", so.So[4])
	fmt.Printf("  DW2 0x%08x\n", so.So[5])
	for i, entry := range so.Decls {
		fmt.Printf("  entry %d: 0x%08x 0x%08x\n", i, entry[0], entry[1])
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: soldump [options] <config.yaml>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  soldump so.yaml          Encode for Gen8\n")
	fmt.Fprintf(os.Stderr, "  soldump -gen 7 so.yaml   Encode for Gen7\n")
	fmt.Fprintf(os.Stderr, "  soldump -v so.yaml       Log encoder activity\n")
}
