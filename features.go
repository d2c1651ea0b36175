package rasterpipe

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// HostFeatures describes the SIMD extensions of the host CPU. The lane
// loops are plain Go, so this is informational: it shows up in debug logs
// and program dumps to help compare results across machines.
func HostFeatures() string {
	var feats []string
	switch runtime.GOARCH {
	case "amd64", "386":
		for _, f := range []struct {
			name string
			ok   bool
		}{
			{"sse2", cpu.X86.HasSSE2},
			{"sse41", cpu.X86.HasSSE41},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"fma", cpu.X86.HasFMA},
			{"avx512f", cpu.X86.HasAVX512F},
		} {
			if f.ok {
				feats = append(feats, f.name)
			}
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			feats = append(feats, "asimd")
		}
		if cpu.ARM64.HasFPHP {
			feats = append(feats, "fphp")
		}
		if cpu.ARM64.HasSVE {
			feats = append(feats, "sve")
		}
	}
	if len(feats) == 0 {
		return runtime.GOARCH
	}
	return runtime.GOARCH + " " + strings.Join(feats, ",")
}
