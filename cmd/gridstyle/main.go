/*
Command gridstyle computes grid classes and styles from the command line and
writes the grid stylesheet.

    gridstyle css -o grid.css
    gridstyle col --span 6 --at md:span=8,offset=0 --gutter 20,10
    gridstyle col --span 6 --flex 1 --format tree

Settings are read from an optional YAML file (--config), flags override them:

    grid:
      namespace: el
      columns: 24
      inline-styles: true
    tracing:
      adapter: logrus
    trace:
      gridstyle.grid: Debug

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
