package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bgrewell/usage"
	fwsi "github.com/forensicfmt/fwsi-go"
	"github.com/forensicfmt/fwsi-go/pkg/item"
	"github.com/forensicfmt/fwsi-go/pkg/itemlist"
	"github.com/theckman/yacspin"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

func main() {
	u := usage.NewUsage(
		usage.WithApplicationName("fwsidump"),
		usage.WithApplicationDescription("fwsidump decodes a Windows shell item or shell item list (LNK target chains, jump-list entries, MRU registry values) and prints its structure."),
	)

	help := u.AddBooleanOption("h", "help", false, "Show this help message", "optional", nil)
	list := u.AddBooleanOption("l", "list", false, "Parse the input as a shell item list rather than a single item", "", nil)
	yamlOut := u.AddBooleanOption("y", "yaml", false, "Print output as YAML instead of text", "", nil)
	strict := u.AddBooleanOption("s", "strict", false, "Keep extension blocks whose checksum disagrees as unknown blocks", "", nil)
	path := u.AddArgument(1, "path", "path to a file containing a raw shell item or item list", "")
	codepageArg := u.AddArgument(2, "codepage", "ANSI codepage identifier for non-Unicode strings (default 1252)", "1252")
	parsed := u.Parse()

	if !parsed {
		u.PrintError(fmt.Errorf("failed to parse arguments"))
		os.Exit(1)
	}
	if *help {
		u.PrintUsage()
		os.Exit(0)
	}
	if path == nil || *path == "" {
		u.PrintError(fmt.Errorf("path to the input file must be provided"))
		os.Exit(1)
	}

	raw, err := os.ReadFile(*path)
	if err != nil {
		u.PrintError(fmt.Errorf("reading %s: %w", *path, err))
		os.Exit(1)
	}

	codepage := 1252
	if codepageArg != nil && *codepageArg != "" {
		if n, err := strconv.Atoi(*codepageArg); err == nil {
			codepage = n
		}
	}

	opts := []fwsi.Option{
		fwsi.WithCodepage(codepage),
		fwsi.WithStrictChecksum(*strict),
	}

	spinner, _ := yacspin.New(yacspin.Config{
		Frequency:       100 * time.Millisecond,
		CharSet:         yacspin.CharSets[11],
		Suffix:          " decoding " + *path,
		SuffixAutoColon: true,
	})
	if spinner != nil {
		_ = spinner.Start()
	}

	var out interface{}
	if *list {
		l, decodeErr := fwsi.DecodeList(raw, opts...)
		if spinner != nil {
			_ = spinner.Stop()
		}
		if decodeErr != nil && l.Count() == 0 {
			u.PrintError(fmt.Errorf("decoding item list: %w", decodeErr))
			os.Exit(1)
		}
		out = summarizeList(l)
	} else {
		it, decodeErr := fwsi.Decode(raw, opts...)
		if spinner != nil {
			_ = spinner.Stop()
		}
		if decodeErr != nil {
			u.PrintError(fmt.Errorf("decoding item: %w", decodeErr))
			os.Exit(1)
		}
		out = summarizeItem(it)
	}

	if *yamlOut {
		enc, err := yaml.Marshal(out)
		if err != nil {
			u.PrintError(fmt.Errorf("marshaling output: %w", err))
			os.Exit(1)
		}
		os.Stdout.Write(enc)
	} else {
		printText(out, terminalWidth())
	}
}

// itemSummary and listSummary are the CLI's own presentation shapes,
// decoupled from the decoder's internal payload types so yaml.Marshal
// output stays stable across internal refactors.
type itemSummary struct {
	ClassType       byte   `yaml:"class_type"`
	ItemType        string `yaml:"item_type"`
	ExtensionBlocks []uint32 `yaml:"extension_block_signatures"`
}

type listSummary struct {
	Count int           `yaml:"count"`
	Items []itemSummary `yaml:"items"`
}

func summarizeItem(it *item.Item) itemSummary {
	sig := make([]uint32, 0, len(it.ExtensionBlocks))
	for _, b := range it.ExtensionBlocks {
		sig = append(sig, b.Signature)
	}
	return itemSummary{ClassType: it.ClassType, ItemType: it.ItemType.String(), ExtensionBlocks: sig}
}

func summarizeList(l *itemlist.ItemList) listSummary {
	summary := listSummary{Count: l.Count()}
	for _, it := range l.Items {
		summary.Items = append(summary.Items, summarizeItem(it))
	}
	return summary
}

func printText(out interface{}, width int) {
	switch v := out.(type) {
	case itemSummary:
		fmt.Printf("class_type: 0x%02x\n", v.ClassType)
		fmt.Printf("item_type:  %s\n", v.ItemType)
		fmt.Printf("extension blocks: %d\n", len(v.ExtensionBlocks))
		for _, sig := range v.ExtensionBlocks {
			fmt.Printf("  0x%08x\n", sig)
		}
	case listSummary:
		fmt.Printf("items: %d\n", v.Count)
		for i, entry := range v.Items {
			fmt.Printf("[%d] class_type=0x%02x item_type=%-20s ext_blocks=%d\n",
				i, entry.ClassType, entry.ItemType, len(entry.ExtensionBlocks))
		}
	}
	_ = width
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
