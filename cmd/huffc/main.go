// Command huffc compresses and decompresses files with Huffman codes.
//
// Usage:
//
//     huffc compress   -in FILE -out FILE -freq FILE [-v]
//     huffc decompress -in FILE -out FILE -freq FILE [-v]
//     huffc roundtrip  -in FILE [-keep] [-baseline] [-v]
//
// The compressed file holds only the bitstream.  The frequency table written
// by compress (as JSON) is what decompress rebuilds the code tree from, so the
// two files travel together.
//
// roundtrip compresses FILE to NAME_compressed.EXT, decompresses that to
// NAME_decompressed.EXT, and checks that the result matches FILE.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	"github.com/chipng2262/huffman"
)

var errUsage = errors.New("usage: huffc compress|decompress|roundtrip [flags]")

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffc: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "compress":
		return runCompress(args[1:])
	case "decompress":
		return runDecompress(args[1:])
	case "roundtrip":
		return runRoundTrip(args[1:], stdout)
	default:
		return errors.Errorf("unknown command %q\n%v", args[0], errUsage)
	}
}

func runCompress(args []string) error {
	fs := flag.NewFlagSet("compress", flag.ContinueOnError)
	in := fs.String("in", "", "file to compress")
	out := fs.String("out", "", "compressed output file")
	freq := fs.String("freq", "", "frequency table output file (JSON)")
	verbose := fs.Bool("v", false, "log each stage")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" || *freq == "" {
		return errors.New("compress: -in, -out and -freq are required")
	}

	freqs, err := huffman.AnalyzeFile(*in)
	if err != nil {
		return err
	}
	tree := huffman.BuildTree(freqs)
	table := huffman.BuildCodeTable(tree)
	if *verbose {
		log.Printf("%s: %d bytes, %d distinct symbols", *in, freqs.Total(), len(freqs))
		log.Printf("%v, %d codes of %d..%d bits", tree, len(table), table.MinSize(), table.MaxSize())
	}

	if err := huffman.CompressFile(table, *in, *out); err != nil {
		return err
	}
	if err := writeFrequencies(*freq, freqs); err != nil {
		return err
	}
	if *verbose {
		log.Printf("%s: %d bits of payload", *out, table.EncodedBits(freqs))
	}
	return nil
}

func runDecompress(args []string) error {
	fs := flag.NewFlagSet("decompress", flag.ContinueOnError)
	in := fs.String("in", "", "compressed file")
	out := fs.String("out", "", "decompressed output file")
	freq := fs.String("freq", "", "frequency table written by compress (JSON)")
	verbose := fs.Bool("v", false, "log each stage")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" || *freq == "" {
		return errors.New("decompress: -in, -out and -freq are required")
	}

	freqs, err := readFrequencies(*freq)
	if err != nil {
		return err
	}
	tree := huffman.BuildTree(freqs)
	if *verbose {
		log.Printf("rebuilt %v from %s", tree, *freq)
	}
	return huffman.DecompressFile(*in, *out, tree)
}

func runRoundTrip(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("roundtrip", flag.ContinueOnError)
	in := fs.String("in", "", "file to compress and restore")
	keep := fs.Bool("keep", false, "keep the compressed and decompressed files")
	baseline := fs.Bool("baseline", false, "also report the zstd-compressed size")
	verbose := fs.Bool("v", false, "log each stage")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errors.New("roundtrip: -in is required")
	}

	compressedPath, decompressedPath := roundTripPaths(*in)
	if !*keep {
		defer func() {
			_ = os.Remove(compressedPath)
			_ = os.Remove(decompressedPath)
		}()
	}

	freqs, err := huffman.AnalyzeFile(*in)
	if err != nil {
		return err
	}
	tree := huffman.BuildTree(freqs)
	table := huffman.BuildCodeTable(tree)
	if *verbose {
		log.Printf("%s: %d bytes, %v", *in, freqs.Total(), tree)
	}

	if err := huffman.CompressFile(table, *in, compressedPath); err != nil {
		return err
	}
	if err := huffman.DecompressFile(compressedPath, decompressedPath, tree); err != nil {
		return err
	}

	same, err := huffman.SameContents(*in, decompressedPath)
	if err != nil {
		return err
	}

	originalSize := int64(freqs.Total())
	compressedSize, err := fileSize(compressedPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s: %d -> %d bytes (%s)\n", *in, originalSize, compressedSize, ratio(compressedSize, originalSize))

	if *baseline {
		size, err := zstdSize(*in)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s: zstd baseline %d bytes (%s)\n", *in, size, ratio(size, originalSize))
	}

	if !same {
		fmt.Fprintln(stdout, "Error.")
		return errors.Errorf("%s differs from %s", decompressedPath, *in)
	}
	fmt.Fprintln(stdout, "Successful.")
	return nil
}

// roundTripPaths derives NAME_compressed.EXT and NAME_decompressed.EXT from
// NAME.EXT.
func roundTripPaths(path string) (compressed, decompressed string) {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return base + "_compressed" + ext, base + "_decompressed" + ext
}

func ratio(part, whole int64) string {
	if whole == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(part)/float64(whole))
}

func fileSize(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

func zstdSize(path string) (int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return 0, err
	}
	defer enc.Close()
	return int64(len(enc.EncodeAll(data, nil))), nil
}

func writeFrequencies(path string, freqs huffman.FrequencyTable) error {
	raw, err := json.MarshalIndent(freqs, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(raw, '\n'), 0o644)
}

func readFrequencies(path string) (huffman.FrequencyTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	freqs := make(huffman.FrequencyTable)
	if err := json.Unmarshal(raw, &freqs); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return freqs, nil
}
