package main

type ServeCmd struct {
	Port uint `default:"2428" help:"Port to listen on."`
}

func (c *ServeCmd) Run(ctx *context) error {
	return ctx.ws.Serve(c.Port)
}
