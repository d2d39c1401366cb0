package main

import (
	"oss.terrastruct.com/shapes/lib/xmain"
	"oss.terrastruct.com/shapes/shapescli"
)

func main() {
	xmain.Main(shapescli.Run)
}
