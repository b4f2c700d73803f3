package connectors

import (
	"github.com/go-resty/resty/v2"
)

type ConnectorBase struct {
	Address string
	client  *resty.Client
}

func NewConnectorBase(address string) *ConnectorBase {
	c := &ConnectorBase{
		Address: address,
		client:  resty.New(),
	}
	c.client.SetBaseURL(address)
	return c
}

func (c *ConnectorBase) SetHeader(header, value string) {
	c.client.SetHeader(header, value)
}

func (c *ConnectorBase) R() *resty.Request {
	return c.client.R()
}
