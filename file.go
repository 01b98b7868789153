package huffman

import (
	"bufio"
	"io"
	"os"
)

// CompressFile compresses the file at inPath into a new file at outPath using
// table.  If compression fails, the partial output file is removed.
func CompressFile(table CodeTable, inPath, outPath string) (err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return ioError("open input", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return ioError("create output", err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = ioError("close output", closeErr)
		}
		if err != nil {
			_ = os.Remove(outPath)
		}
	}()

	return Compress(table, in, out)
}

// DecompressFile decompresses the file at inPath, which CompressFile produced
// with the code table of tree, into a new file at outPath.  When tree is empty
// the output is created empty and inPath is not opened.
func DecompressFile(inPath, outPath string, tree *Tree) (err error) {
	out, err := os.Create(outPath)
	if err != nil {
		return ioError("create output", err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = ioError("close output", closeErr)
		}
	}()

	if tree.Empty() {
		return nil
	}

	in, err := os.Open(inPath)
	if err != nil {
		return ioError("open input", err)
	}
	defer in.Close()

	return Decompress(in, out, tree)
}

// AnalyzeFile returns the FrequencyTable of the file at path.
func AnalyzeFile(path string) (FrequencyTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError("open input", err)
	}
	defer f.Close()
	return Analyze(f)
}

// SameContents returns true iff the files at a and b hold identical bytes.
func SameContents(a, b string) (bool, error) {
	fa, err := os.Open(a)
	if err != nil {
		return false, ioError("open "+a, err)
	}
	defer fa.Close()

	fb, err := os.Open(b)
	if err != nil {
		return false, ioError("open "+b, err)
	}
	defer fb.Close()

	ra, rb := bufio.NewReader(fa), bufio.NewReader(fb)
	for {
		ca, errA := ra.ReadByte()
		cb, errB := rb.ReadByte()
		switch {
		case errA == io.EOF && errB == io.EOF:
			return true, nil
		case errA == io.EOF || errB == io.EOF:
			return false, nil
		case errA != nil:
			return false, ioError("read "+a, errA)
		case errB != nil:
			return false, ioError("read "+b, errB)
		case ca != cb:
			return false, nil
		}
	}
}
