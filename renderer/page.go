// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import "strings"

// wrapPage returns the fragment inside a minimal XHTML page.
func wrapPage(fragment string) string {
	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"no\"?>\n")
	sb.WriteString("<html>\n")
	sb.WriteString("  <head>\n")
	sb.WriteString("    <meta content=\"text/html;charset=UTF-8\" http-equiv=\"content-type\"/>\n")
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString(fragment)
	sb.WriteString("\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</html>\n")
	return sb.String()
}
