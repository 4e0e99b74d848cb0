package testutils

import (
	"github.com/itbasis/go-clock"
)

type TestController struct {
	Clock       *clock.Mock
	fakeSleeper *FakeSleeperServer
	fakeOpenAI  *FakeOpenAIServer
}

func NewTestController() *TestController {
	return &TestController{
		Clock:       clock.NewMock(),
		fakeSleeper: NewFakeSleeperServer(),
		fakeOpenAI:  NewFakeOpenAIServer(),
	}
}

func (c *TestController) Close() {
	c.fakeSleeper.Close()
	c.fakeOpenAI.Close()
}

func (c *TestController) SleeperURL() string {
	return c.fakeSleeper.URL()
}

func (c *TestController) OpenAIURL() string {
	return c.fakeOpenAI.URL()
}

func (c *TestController) OpenAICalls() int {
	return c.fakeOpenAI.Calls()
}

func (c *TestController) SetOpenAIReply(reply string) {
	c.fakeOpenAI.SetReply(reply)
}
