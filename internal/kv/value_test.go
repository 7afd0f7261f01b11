package kv

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/customer-templates/internal/kv/mocks"
	"github.com/umalmyha/customer-templates/internal/model"
	"github.com/umalmyha/customer-templates/internal/seed"
)

const testKey = "customers"

type valueTestSuite struct {
	suite.Suite
	ctx     context.Context
	logHook *test.Hook
}

func (s *valueTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logHook = test.NewGlobal()
}

func (s *valueTestSuite) SetupTest() {
	s.logHook.Reset()
}

func (s *valueTestSuite) TestReadNeverWrittenKey() {
	v := NewValue[[]model.Customer](NewMemory(), JSONCodec{}, testKey)
	def := seed.Customers()

	s.T().Log("default must be returned for key which was never written")
	{
		got := v.Read(s.ctx, def)
		s.Require().Equal(def, got, "default value must be returned")
		s.Require().Empty(s.logHook.AllEntries(), "missing key is not a failure and must not be logged")
	}
}

func (s *valueTestSuite) TestReadCorruptedValue() {
	backend := NewMemory()
	s.Require().NoError(backend.Set(s.ctx, testKey, []byte(`[{"id":"1","code":`)))

	v := NewValue[[]model.Customer](backend, JSONCodec{}, testKey)
	def := seed.Customers()

	s.T().Log("default must be returned for corrupted value")
	{
		got := v.Read(s.ctx, def)
		s.Require().Equal(def, got, "default value must be returned")
		s.Require().Equal(logrus.WarnLevel, s.logHook.LastEntry().Level, "corruption must be logged as warning")
	}

	s.T().Log("default becomes current value")
	{
		got := v.Read(s.ctx, nil)
		s.Require().Equal(def, got, "previously used default must stay current")
	}
}

func (s *valueTestSuite) TestReadBackendFailure() {
	backend := mocks.NewBackend(s.T())
	backend.On("Get", s.ctx, testKey).Return(nil, errors.New("storage is disabled")).Once()

	v := NewValue[[]model.Template](backend, JSONCodec{}, testKey)
	def := seed.Templates()

	s.T().Log("backend failure must not be propagated")
	{
		got := v.Read(s.ctx, def)
		s.Require().Equal(def, got, "default value must be returned")
		s.Require().Len(s.logHook.AllEntries(), 1, "failure must be logged")
	}

	s.T().Log("backend is queried only once")
	{
		_ = v.Read(s.ctx, nil)
		backend.AssertNumberOfCalls(s.T(), "Get", 1)
	}
}

func (s *valueTestSuite) TestWriteFailureKeepsValueInMemory() {
	backend := mocks.NewBackend(s.T())
	backend.On("Get", s.ctx, testKey).Return(nil, ErrNotFound).Once()
	backend.On("Set", s.ctx, testKey, mock.AnythingOfType("[]uint8")).Return(errors.New("quota exceeded")).Once()

	v := NewValue[[]model.Template](backend, JSONCodec{}, testKey)
	_ = v.Read(s.ctx, seed.Templates())

	updated := seed.Templates()[:1]

	s.T().Log("write failure must be swallowed and logged")
	{
		v.Write(s.ctx, updated)
		s.Require().Equal(logrus.WarnLevel, s.logHook.LastEntry().Level, "write failure must be logged as warning")
	}

	s.T().Log("session state must reflect the write")
	{
		got := v.Read(s.ctx, nil)
		s.Require().Equal(updated, got, "in-memory value must be updated despite storage failure")
	}
}

func (s *valueTestSuite) TestRoundTrip() {
	codecs := []Codec{JSONCodec{}, MsgpackCodec{}}

	for _, codec := range codecs {
		backend := NewMemory()
		customers := seed.Customers()[:2]

		s.T().Logf("customers written with %s codec must be read back unchanged", codec.Name())
		{
			NewValue[[]model.Customer](backend, codec, testKey).Write(s.ctx, customers)

			got := NewValue[[]model.Customer](backend, codec, testKey).Read(s.ctx, nil)
			s.Require().Equal(customers, got, "round trip must preserve every field")
		}
	}
}

func (s *valueTestSuite) TestRoundTripWithEmptyTemplates() {
	backend := NewMemory()
	customers := seed.Customers()

	NewValue[[]model.Customer](backend, JSONCodec{}, testKey).Write(s.ctx, customers)
	got := NewValue[[]model.Customer](backend, JSONCodec{}, testKey).Read(s.ctx, nil)
	s.Require().Equal(customers, got, "round trip must preserve every field")
}

func TestValueTestSuite(t *testing.T) {
	suite.Run(t, new(valueTestSuite))
}

func TestWithNamespace(t *testing.T) {
	ctx := context.Background()
	memory := NewMemory()
	backend := WithNamespace(memory, "profile")

	require.NoError(t, backend.Set(ctx, "templates", []byte("[]")))

	_, err := memory.Get(ctx, "templates")
	require.ErrorIs(t, err, ErrNotFound, "key must not be stored without namespace")

	data, err := memory.Get(ctx, "profile:templates")
	require.NoError(t, err)
	require.Equal(t, []byte("[]"), data)

	data, err = backend.Get(ctx, "templates")
	require.NoError(t, err)
	require.Equal(t, []byte("[]"), data)

	require.Same(t, memory, WithNamespace(memory, ""), "empty namespace must not wrap backend")
}

func TestCodecByName(t *testing.T) {
	codec, err := CodecByName("")
	require.NoError(t, err)
	require.Equal(t, CodecJSON, codec.Name(), "json must be default codec")

	codec, err = CodecByName(CodecMsgpack)
	require.NoError(t, err)
	require.Equal(t, CodecMsgpack, codec.Name())

	_, err = CodecByName("xml")
	require.Error(t, err, "unknown codec must be rejected")
}

func TestMemoryIsolatesStoredBytes(t *testing.T) {
	ctx := context.Background()
	memory := NewMemory()

	value := []byte("abc")
	require.NoError(t, memory.Set(ctx, "k", value))
	value[0] = 'x'

	got, err := memory.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), got, "stored bytes must not change with caller buffer")
}
