package idgen_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/army-rater/internal/pkg/idgen"
)

type IDGenTestSuite struct {
	suite.Suite
}

func TestIDGenSuite(t *testing.T) {
	suite.Run(t, new(IDGenTestSuite))
}

func (s *IDGenTestSuite) TestUUIDPrefix() {
	id := idgen.NewUUID("army").Generate()
	s.True(strings.HasPrefix(id, "army_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "army_"))
	s.NoError(err)

	bare := idgen.NewUUID("").Generate()
	_, err = uuid.Parse(bare)
	s.NoError(err)
}

func (s *IDGenTestSuite) TestSequentialIsUniqueUnderConcurrency() {
	gen := idgen.NewSequential("army")
	seen := sync.Map{}
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, dup := seen.LoadOrStore(gen.Generate(), true)
			s.False(dup)
		}()
	}
	wg.Wait()

	s.Equal("army_51", gen.Generate())
	s.Equal("1", idgen.NewSequential("").Generate())
}
