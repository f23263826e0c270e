package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/buildsense-ai/v0-buildsense/internal/auth"
	"github.com/buildsense-ai/v0-buildsense/internal/models"
)

type fakeEventsAPI struct {
	events    []models.ExternalEvent
	fetchErr  error
	gotAuth   string
	probeCode int
	probeErr  error
}

func (f *fakeEventsAPI) FetchEvents(ctx context.Context, authorization string) ([]models.ExternalEvent, error) {
	f.gotAuth = authorization
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.events, nil
}

func (f *fakeEventsAPI) Probe(ctx context.Context) (int, error) {
	if f.probeErr != nil {
		return 0, f.probeErr
	}
	return f.probeCode, nil
}

func TestGetIssueCards_MapsEvents(t *testing.T) {
	api := &fakeEventsAPI{
		events: []models.ExternalEvent{
			{ID: "ev-1", Category: "安全隐患", Summary: "3号楼临边防护缺失", Status: "0"},
		},
	}
	svc := NewIssueCardService(api, nil, zap.NewNop())

	list := svc.GetIssueCards(context.Background())

	assert.Equal(t, models.SourceLive, list.Source)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "ev-1", list.Items[0].ID)
	assert.Equal(t, "3号楼", list.Items[0].Location)
	assert.Equal(t, "安全部", list.Items[0].ResponsibleParty)
}

func TestGetIssueCards_NeverFails(t *testing.T) {
	api := &fakeEventsAPI{fetchErr: errors.New("connection refused")}
	svc := NewIssueCardService(api, nil, zap.NewNop())

	// 网络失败时不抛错，返回内置演示数据
	list := svc.GetIssueCards(context.Background())

	assert.Equal(t, models.SourceFallback, list.Source)
	assert.Equal(t, FallbackCards(), list.Items)
}

func TestGetIssueCards_AttachesCredential(t *testing.T) {
	api := &fakeEventsAPI{events: []models.ExternalEvent{}}
	svc := NewIssueCardService(api, auth.NewStaticProvider("t-9", ""), zap.NewNop())

	list := svc.GetIssueCards(context.Background())

	assert.Equal(t, models.SourceLive, list.Source)
	assert.Equal(t, "Bearer t-9", api.gotAuth)
}

func TestGetIssueCards_NoSessionGoesAnonymous(t *testing.T) {
	api := &fakeEventsAPI{events: []models.ExternalEvent{}}
	svc := NewIssueCardService(api, auth.NewStaticProvider("", ""), zap.NewNop())

	svc.GetIssueCards(context.Background())

	assert.Equal(t, "", api.gotAuth)
}

func TestCheckAPIStatus(t *testing.T) {
	svc := NewIssueCardService(&fakeEventsAPI{probeCode: 200}, nil, zap.NewNop())
	st := svc.CheckAPIStatus(context.Background())
	assert.True(t, st.Available)
	assert.NotEmpty(t, st.Timestamp)

	svc = NewIssueCardService(&fakeEventsAPI{probeCode: 503}, nil, zap.NewNop())
	st = svc.CheckAPIStatus(context.Background())
	assert.False(t, st.Available)
	assert.Contains(t, st.Message, "503")

	svc = NewIssueCardService(&fakeEventsAPI{probeErr: errors.New("timeout")}, nil, zap.NewNop())
	st = svc.CheckAPIStatus(context.Background())
	assert.False(t, st.Available)
	assert.Contains(t, st.Message, "无法连接")
}
