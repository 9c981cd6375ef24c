package binwrite_test

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arloliu/binwrite"
	"github.com/arloliu/binwrite/track"
)

func ExampleEncodeWith() {
	opts := binwrite.MustOptions(binwrite.WithBigEndian())

	var buf bytes.Buffer
	_ = binwrite.EncodeWith(binwrite.NewTuple2(binwrite.U16(3), binwrite.U16(4)), &buf, opts)

	fmt.Printf("% x\n", buf.Bytes())
	// Output: 00 03 00 04
}

func ExampleMarshal() {
	out, _ := binwrite.Marshal(binwrite.I32(-2), binwrite.WithLittleEndian())

	fmt.Printf("% X\n", out)
	// Output: FE FF FF FF
}

func ExampleWriteUTF16NullTerminated() {
	var buf bytes.Buffer
	_ = binwrite.WriteUTF16NullTerminated("a", &buf, binwrite.MustOptions(binwrite.WithBigEndian()))

	fmt.Printf("% x\n", buf.Bytes())
	// Output: 00 61 00 00
}

func ExampleSeq() {
	var buf bytes.Buffer
	_ = binwrite.EncodeWith(binwrite.Seq[binwrite.U16]{1, 2, 3}, &buf, binwrite.MustOptions(binwrite.WithLittleEndian()))

	fmt.Printf("% x\n", buf.Bytes())
	// Output: 01 00 02 00 03 00
}

func Example_positionTracking() {
	var buf bytes.Buffer
	tw := track.NewWriter(&buf)

	_ = binwrite.Encode(binwrite.CString("header"), tw)
	pos, _ := tw.Seek(0, io.SeekCurrent)
	fmt.Println("after header:", pos)

	_, err := tw.Seek(-1, io.SeekCurrent)
	fmt.Println(err != nil)
	// Output:
	// after header: 7
	// true
}
