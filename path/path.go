package path

import (
	"strings"

	"github.com/ravensec/urldetector/urlutil"
)

// Normalize decodes p, collapses "//", "/./", and "/../" segments (preserving a trailing dot that
// is part of an ordinary segment name, such as "/a./b."), substitutes "/" for an empty result, and
// re-encodes. It is idempotent.
func Normalize(p string) string {
	decoded := urlutil.Decode(p)
	collapsed := collapseDotSegments(decoded)

	if collapsed == "" {
		collapsed = "/"
	}

	return urlutil.Encode(collapsed)
}

// collapseDotSegments walks decoded left to right, maintaining a stack of the output positions of
// each '/' written so far so that "/../" can pop back to the previous segment boundary.
func collapseDotSegments(decoded string) string {
	var out []byte

	var slashStack []int

	i := 0

	for i < len(decoded) {
		if decoded[i] != '/' {
			out = append(out, decoded[i])
			i++

			continue
		}

		rest := decoded[i:]

		switch {
		case strings.HasPrefix(rest, "//"):
			out = append(out, '/')
			slashStack = append(slashStack, len(out)-1)
			i++

			for i < len(decoded) && decoded[i] == '/' {
				i++
			}

		case strings.HasPrefix(rest, "/./"):
			// The trailing '/' of this pattern is shared with the segment that follows; only
			// consume "/.", leaving the shared slash for the next iteration to write.
			i += 2

		case rest == "/.":
			out = append(out, '/')
			slashStack = append(slashStack, len(out)-1)
			i += 2

		case strings.HasPrefix(rest, "/../"):
			popSegment(&out, &slashStack)
			i += 3

		case rest == "/..":
			popSegment(&out, &slashStack)
			out = append(out, '/')
			slashStack = append(slashStack, len(out)-1)
			i += 3

		default:
			out = append(out, '/')
			slashStack = append(slashStack, len(out)-1)
			i++
		}
	}

	return string(out)
}

// popSegment removes the most recently written segment (back to, and including, its leading '/'),
// if any segment has been written. A "/../" with no prior segment to pop is simply dropped: a
// browser-style path cannot rise above its root.
func popSegment(out *[]byte, slashStack *[]int) {
	if len(*slashStack) == 0 {
		return
	}

	last := (*slashStack)[len(*slashStack)-1]
	*slashStack = (*slashStack)[:len(*slashStack)-1]
	*out = (*out)[:last]
}
