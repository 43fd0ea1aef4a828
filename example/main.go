// A small demonstration of the sanitize → parse → annotate pipeline: it
// parses a stylesheet with a quoted inline comment, prints the offset of
// every node and slices the comment back out of the original text.
package main

import (
	"fmt"
	"log"

	cssloc "github.com/stylekit/go-cssloc"
	"github.com/stylekit/go-cssloc/scss"
)

const sample = `// page chrome, don't touch
@import 'reset.css';

.banner {
  width: calc(100% - 2em);
  color: red !important;
}
`

func main() {
	st, err := cssloc.Parse(sample)
	if err != nil {
		log.Fatal(err)
	}

	scss.Walk(st.Root, func(n *scss.Node) bool {
		src, ok := st.Slice(n.Source)
		if !ok {
			fmt.Printf("%-8s <no offsets>\n", n.Type)
			return true
		}
		fmt.Printf("%-8s [%d..%d) %q\n", n.Type, n.Source.StartOffset, n.Source.EndOffset, src)
		return true
	})

	// The comment comes back verbatim, apostrophe included, even though the
	// parser saw the sanitized variant.
	if s, ok := st.Slice(st.Root.Nodes[0].Source); ok {
		fmt.Println(s)
	}
}
