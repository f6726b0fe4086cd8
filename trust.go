package guardenv

import "runtime"

// DetectTrusted probes the execution context when Descriptor.Trusted is nil.
// A js/wasm runtime is the browser-equivalent untrusted context; everything
// else counts as a trusted server process.
func DetectTrusted() bool {
	return !(runtime.GOOS == "js" && runtime.GOARCH == "wasm")
}
