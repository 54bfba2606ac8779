package game

import (
	"github.com/leonelquinteros/gotext"

	"github.com/samdwyer/battletested/internal/ui"
)

const (
	bannerRow = 4
	bannerCol = 5
)

var banner = []string{
	` _             _    _    _        _____             _              _ `,
	`| |           | |  | |  | |      |_   _|           | |            | |`,
	`| |__    __ _ | |_ | |_ | |  ___   | |    ___  ___ | |_   ___   __| |`,
	`| '_ \  / _` + "`" + ` || __|| __|| | / _ \  | |   / _ \/ __|| __| / _ \ / _` + "`" + ` |`,
	`| |_) || (_| || |_ | |_ | ||  __/  | |  |  __/\__ \| |_ |  __/| (_| |`,
	`|_.__/  \__,_| \__| \__||_| \___|  \_/   \___||___/ \__| \___| \__,_|`,
}

func drawTitle(r *ui.Renderer) {
	style := r.TextStyle()
	for i, line := range banner {
		r.Text(bannerCol, bannerRow+i, line, style)
	}
	r.Text(bannerCol, bannerRow+len(banner)+2, gotext.Get("Press any key"), style)
}
