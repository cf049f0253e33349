// This file is part of famibus.
//
// famibus is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// famibus is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with famibus.  If not, see <https://www.gnu.org/licenses/>.

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address is the address the stats server listens on.
const Address = "localhost:12600"

// URL is the path of the statistics page.
const URL = "/debug/statsview"

var launch sync.Once

// Launch a new goroutine running the statsview. Calling Launch more than once
// has no further effect.
func Launch(output io.Writer) {
	launch.Do(func() {
		go func() {
			viewer.SetConfiguration(viewer.WithAddr(Address))
			mgr := statsview.New()
			mgr.Start()
		}()
	})

	if output != nil {
		output.Write([]byte(fmt.Sprintf("stats server available at %s%s\n", Address, URL)))
	}
}
