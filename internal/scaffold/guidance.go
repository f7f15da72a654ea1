package scaffold

import (
	"fmt"
	"io"
)

// Guidance prints the manual paths to real SafeTensors weights. The scaffold
// only covers config and tokenizer metadata; weights are not converted.
func Guidance(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "NOTE: tensor data was NOT converted. This scaffold contains config and")
	fmt.Fprintln(w, "tokenizer metadata only; GGUF weight extraction is not implemented.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "To obtain real SafeTensors weights:")
	fmt.Fprintln(w, "1. Download the original model in SafeTensors format:")
	fmt.Fprintln(w, "   huggingface-cli download google/gemma-2-2b-it --local-dir ./models/gemma-2-2b-it")
	fmt.Fprintln(w, "   (or: gguf2st pull <resolve-url> --out ./models)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "2. Use the llama.cpp convert script in reverse:")
	fmt.Fprintln(w, "   convert the GGUF back to HuggingFace format, then fetch the")
	fmt.Fprintln(w, "   SafeTensors version.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "3. Find the original model on HuggingFace Hub:")
	fmt.Fprintln(w, "   search for the base model the GGUF was quantized from and download")
	fmt.Fprintln(w, "   it directly in SafeTensors format.")
}
