package static

import (
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli"
)

const (
	assetsPathFlag = "assets-path"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   assetsPathFlag,
			Usage:  "assets path",
			Value:  "./assets",
			EnvVar: "ASSETS_PATH",
		},
	)
}

func RegisterHandler(c *cli.Context, r *gin.Engine) error {
	r.Static("/assets", c.String(assetsPathFlag))
	return nil
}
