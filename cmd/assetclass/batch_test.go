package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/assetclass/internal/classifier"
	"github.com/fyrsmithlabs/assetclass/internal/segment"
	"github.com/fyrsmithlabs/assetclass/internal/traindata"
)

func TestAccuracy(t *testing.T) {
	assert.Equal(t, 0.0, accuracy(0, 0))
	assert.Equal(t, 50.0, accuracy(1, 2))
	assert.Equal(t, 100.0, accuracy(3, 3))
}

func TestEvaluate(t *testing.T) {
	c, err := classifier.New(context.Background(), classifier.Config{
		Rows:      traindata.Default(),
		Tokenizer: segment.TokenizerFunc(strings.Fields),
	})
	require.NoError(t, err)

	rows := []traindata.Row{
		{AssetName: "防火牆設備", Category: "實體"},
		{AssetName: "資料庫管理系統", Category: "軟體"},
		{AssetName: "作業文件", Category: "資料"},
		{AssetName: "防火牆設備", Category: "軟體"}, // deliberately mislabeled
	}

	report := evaluate(context.Background(), c, rows)

	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 3, report.Correct)
	require.Len(t, report.Mistakes, 1)
	assert.Equal(t, "防火牆設備", report.Mistakes[0].AssetName)
	assert.Equal(t, "軟體", report.Mistakes[0].Expected)
	assert.Equal(t, "實體", report.Mistakes[0].Predicted)
	assert.Equal(t, 1, report.PerCategory["實體"].Correct)
	assert.Equal(t, 0, report.PerCategory["軟體"].Correct)
	assert.Equal(t, 2, report.PerCategory["軟體"].Total)
}

func TestTrimRanked(t *testing.T) {
	result := classifier.Result{Ranked: make([]classifier.CategoryScore, 5)}

	assert.Len(t, trimRanked(result, 0).Ranked, 5)
	assert.Len(t, trimRanked(result, 3).Ranked, 3)
	assert.Len(t, trimRanked(result, 9).Ranked, 5)
}

func TestInputNamesPassthrough(t *testing.T) {
	names, err := inputNames([]string{"防火牆設備", "內部人員"})
	require.NoError(t, err)
	assert.Equal(t, []string{"防火牆設備", "內部人員"}, names)
}
