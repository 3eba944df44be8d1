package assets

import "embed"

//go:embed all:banner.txt
var bannerFS embed.FS

var BannerString string

func init() {
	bytes, err := bannerFS.ReadFile("banner.txt")
	if err != nil {
		// embedded at compile time, so this cannot fail at runtime
		panic(err)
	}

	BannerString = string(bytes)
}
