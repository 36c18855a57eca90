package svg

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/orgchart/pkg/orgtree"
)

const (
	popupCSS = `
    .popup { pointer-events: none; transition: opacity 0.15s ease; }
    .popup[visibility="hidden"] { opacity: 0; }
    .popup[visibility="visible"] { opacity: 1; }`

	popupJS = `
    const svg = document.querySelector('svg');
    const vb = svg.viewBox.baseVal;
    const chart = document.querySelector('.chart');
    const offsetY = chart.transform.baseVal.numberOfItems ? chart.transform.baseVal.getItem(0).matrix.f : 0;
    document.querySelectorAll('.node').forEach(el => {
      const popup = document.querySelector('.popup[data-for="' + el.dataset.id + '"]');
      if (!popup) return;
      el.style.cursor = 'pointer';
      el.addEventListener('mouseenter', () => {
        const box = el.getBBox();
        const pb = popup.getBBox();
        let x = box.x + box.width + 12;
        let y = box.y - 20;
        if (x + pb.width > vb.width - 10) x = box.x - pb.width - 12;
        if (y + pb.height + offsetY > vb.height - 10) y = vb.height - offsetY - pb.height - 10;
        x = Math.max(10, x);
        y = Math.max(10 - offsetY, y);
        popup.setAttribute('transform', 'translate(' + x.toFixed(1) + ',' + y.toFixed(1) + ')');
        popup.setAttribute('visibility', 'visible');
      });
      el.addEventListener('mouseleave', () => popup.setAttribute('visibility', 'hidden'));
    });`
)

const (
	popupWidth   = 280.0
	popupPad     = 20.0
	popupLine    = 20.0
	popupBarArea = 36.0
)

// popupLines returns the detail lines of a node's hover card, without the
// onboarding progress bar.
func (r *renderer) popupLines(n *orgtree.Node) []string {
	e := n.Employee
	var lines []string
	if e.Department != "" {
		lines = append(lines, e.Department)
	}
	if e.Email != "" {
		lines = append(lines, e.Email)
	}
	if e.StartDate != "" {
		lines = append(lines, "Started "+e.StartDate)
	}
	if e.HasManager() {
		name, ok := r.names[e.ManagerID]
		if !ok {
			name = "Unknown"
		}
		lines = append(lines, "Reports to: "+name)
	}
	return lines
}

func (r *renderer) renderPopup(buf *bytes.Buffer, n *orgtree.Node) {
	e := n.Employee
	lines := r.popupLines(n)
	progress, hasProgress := e.Progress()

	h := popupPad*2 + 44 + float64(len(lines))*popupLine
	if hasProgress {
		h += popupBarArea
	}

	fmt.Fprintf(buf, `    <g class="popup" data-for="%s" visibility="hidden">`+"\n", escape(e.ID))
	fmt.Fprintf(buf, `      <rect width="%.0f" height="%.0f" rx="12" fill="#ffffff" stroke="#e5e7eb" filter="url(#shadow)"/>`+"\n", popupWidth, h)
	fmt.Fprintf(buf, `      <rect x="%.0f" y="%.0f" width="40" height="40" rx="10" fill="url(#badge)"/>`+"\n", popupPad, popupPad)
	fmt.Fprintf(buf, `      <text x="%.0f" y="%.0f" text-anchor="middle" dominant-baseline="central" font-size="13" font-weight="600" fill="#ffffff">%s</text>`+"\n",
		popupPad+20, popupPad+20, escape(e.Initials()))
	textW := popupWidth - popupPad*2 - 52
	fmt.Fprintf(buf, `      <text x="%.0f" y="%.0f" font-size="14" font-weight="600" fill="%s">%s</text>`+"\n",
		popupPad+52, popupPad+16, textStrong, escape(truncate(e.FullName(), textW, 14)))
	fmt.Fprintf(buf, `      <text x="%.0f" y="%.0f" font-size="12" fill="%s">%s</text>`+"\n",
		popupPad+52, popupPad+34, textMuted, escape(truncate(e.Title(), textW, 12)))

	y := popupPad + 44 + popupLine
	for _, l := range lines {
		fmt.Fprintf(buf, `      <text x="%.0f" y="%.0f" font-size="12" fill="%s">%s</text>`+"\n",
			popupPad, y-6, textMuted, escape(truncate(l, popupWidth-popupPad*2, 12)))
		y += popupLine
	}

	if hasProgress {
		barW := popupWidth - popupPad*2
		fmt.Fprintf(buf, `      <text x="%.0f" y="%.0f" font-size="11" fill="%s">Onboarding Progress</text>`+"\n", popupPad, y+4, textFaint)
		fmt.Fprintf(buf, `      <text x="%.0f" y="%.0f" text-anchor="end" font-size="11" font-weight="600" fill="%s">%d%%</text>`+"\n",
			popupPad+barW, y+4, textStrong, progress)
		fmt.Fprintf(buf, `      <rect x="%.0f" y="%.0f" width="%.0f" height="8" rx="4" fill="#f1f5f9"/>`+"\n", popupPad, y+12, barW)
		fmt.Fprintf(buf, `      <rect class="progress" x="%.0f" y="%.0f" width="%.1f" height="8" rx="4" fill="url(#progress)"/>`+"\n",
			popupPad, y+12, barW*float64(progress)/100)
	}
	buf.WriteString("    </g>\n")
}

func renderPopupScript(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", popupCSS)
	fmt.Fprintf(buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", popupJS)
}
