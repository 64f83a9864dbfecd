package backup

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenbackup/xenbackup/types"
	"github.com/xenbackup/xenbackup/xenmobile"
)

type fakeDetailFetcher struct {
	calls           []int
	classifications []types.Classification
	details         map[int]*types.ApplicationDetail
	errs            map[int]error
}

func (f *fakeDetailFetcher) GetApplication(classification types.Classification, id int) (*types.ApplicationDetail, error) {
	f.calls = append(f.calls, id)
	f.classifications = append(f.classifications, classification)
	if err, ok := f.errs[id]; ok {
		return nil, err
	}
	return f.details[id], nil
}

func TestAggregate_MergesManagedAppDetail(t *testing.T) {
	fetcher := &fakeDetailFetcher{
		details: map[int]*types.ApplicationDetail{
			1: {
				ApplicationSummary: types.ApplicationSummary{ID: 1, Name: "A", AppType: types.AppTypeMDX},
				IOS: &types.PlatformConfig{
					DisplayName: "A",
					Policies: []types.Policy{
						{PolicyName: "App passcode", PolicyValue: "true"},
						{PolicyName: "Block camera", PolicyValue: "false"},
					},
				},
				Android: nil,
			},
		},
	}

	summaries := []types.ApplicationSummary{
		{ID: 1, Name: "A", AppType: types.AppTypeMDX},
		{ID: 2, Name: "B", AppType: types.AppTypeWebLink},
	}

	apps := Aggregate(fetcher, summaries)
	require.Len(t, apps, 2)

	// App A carries the detail with iOS populated and Android absent
	require.NotNil(t, apps[0].Detail)
	require.NotNil(t, apps[0].Detail.IOS)
	assert.Nil(t, apps[0].Detail.Android)
	// Policy order is untouched
	assert.Equal(t, "App passcode", apps[0].Detail.IOS.Policies[0].PolicyName)
	assert.Equal(t, "Block camera", apps[0].Detail.IOS.Policies[1].PolicyName)

	// App B is summary-only and no detail call was made for it
	assert.Nil(t, apps[1].Detail)
	assert.Equal(t, []int{1}, fetcher.calls)
}

func TestAggregate_NoDetailFetchForUnmanagedTypes(t *testing.T) {
	fetcher := &fakeDetailFetcher{}

	summaries := []types.ApplicationSummary{
		{ID: 1, Name: "Store App", AppType: types.AppTypeAppStore},
		{ID: 2, Name: "Portal", AppType: types.AppTypeWebLink},
		{ID: 3, Name: "Mystery", AppType: "SaaS"},
	}

	apps := Aggregate(fetcher, summaries)
	require.Len(t, apps, 3)
	assert.Empty(t, fetcher.calls)
	for _, app := range apps {
		assert.Nil(t, app.Detail)
	}
}

func TestAggregate_MobileClassificationUsedForFetch(t *testing.T) {
	fetcher := &fakeDetailFetcher{
		details: map[int]*types.ApplicationDetail{
			1: {ApplicationSummary: types.ApplicationSummary{ID: 1}},
			2: {ApplicationSummary: types.ApplicationSummary{ID: 2}},
		},
	}

	summaries := []types.ApplicationSummary{
		{ID: 1, Name: "MDX app", AppType: types.AppTypeMDX},
		{ID: 2, Name: "Enterprise app", AppType: types.AppTypeEnterprise},
	}

	Aggregate(fetcher, summaries)
	assert.Equal(t, []types.Classification{types.ClassificationMobile, types.ClassificationMobile}, fetcher.classifications)
}

func TestAggregate_DetailFailureSkipsAndContinues(t *testing.T) {
	fetcher := &fakeDetailFetcher{
		details: map[int]*types.ApplicationDetail{
			3: {ApplicationSummary: types.ApplicationSummary{ID: 3, Name: "C"}},
		},
		errs: map[int]error{
			1: &xenmobile.FetchError{Resource: "application 1", Err: errors.New("boom")},
		},
	}

	summaries := []types.ApplicationSummary{
		{ID: 1, Name: "A", AppType: types.AppTypeMDX},
		{ID: 2, Name: "B", AppType: types.AppTypeWebLink},
		{ID: 3, Name: "C", AppType: types.AppTypeEnterprise},
	}

	apps := Aggregate(fetcher, summaries)
	require.Len(t, apps, 3)

	// The failure keeps A's summary record in place, in order
	assert.Equal(t, "A", apps[0].Name)
	assert.Nil(t, apps[0].Detail)
	assert.Equal(t, "B", apps[1].Name)
	assert.Equal(t, "C", apps[2].Name)
	assert.NotNil(t, apps[2].Detail)
}

func TestAggregate_OutputOrderMatchesInput(t *testing.T) {
	fetcher := &fakeDetailFetcher{
		details: map[int]*types.ApplicationDetail{
			5: {ApplicationSummary: types.ApplicationSummary{ID: 5}},
			9: {ApplicationSummary: types.ApplicationSummary{ID: 9}},
		},
	}

	summaries := []types.ApplicationSummary{
		{ID: 9, Name: "Alpha", AppType: types.AppTypeMDX},
		{ID: 2, Name: "Beta", AppType: types.AppTypeWebLink},
		{ID: 5, Name: "Gamma", AppType: types.AppTypeEnterprise},
	}

	apps := Aggregate(fetcher, summaries)
	require.Len(t, apps, 3)
	assert.Equal(t, 9, apps[0].ID)
	assert.Equal(t, 2, apps[1].ID)
	assert.Equal(t, 5, apps[2].ID)
}

func TestAggregate_EmptyList(t *testing.T) {
	fetcher := &fakeDetailFetcher{}
	apps := Aggregate(fetcher, nil)
	assert.Empty(t, apps)
	assert.Empty(t, fetcher.calls)
}
