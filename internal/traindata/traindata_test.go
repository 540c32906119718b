package traindata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantRows int
		wantErr  error
	}{
		{
			name:     "rows without header",
			input:    "防火牆設備,實體\n資料庫管理系統,軟體\n",
			wantRows: 2,
		},
		{
			name:     "chinese header skipped",
			input:    "資產名稱,資產類別\n防火牆設備,實體\n",
			wantRows: 1,
		},
		{
			name:     "english header skipped",
			input:    "asset_name,category\n內部人員,人員\n",
			wantRows: 1,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrNoRows,
		},
		{
			name:    "header only",
			input:   "資產名稱,資產類別\n",
			wantErr: ErrNoRows,
		},
		{
			name:    "missing column",
			input:   "防火牆設備\n",
			wantErr: ErrMalformedRow,
		},
		{
			name:    "blank category",
			input:   "防火牆設備,\n",
			wantErr: ErrMalformedRow,
		},
		{
			name:     "extra columns tolerated",
			input:    "防火牆設備,實體,機房A\n",
			wantRows: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Load(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, rows, tt.wantRows)
		})
	}
}

func TestLoadTrimsWhitespace(t *testing.T) {
	rows, err := Load(strings.NewReader(" 防火牆設備 , 實體 \n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "防火牆設備", rows[0].AssetName)
	assert.Equal(t, "實體", rows[0].Category)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("does/not/exist.csv")
	assert.Error(t, err)
}

func TestCategoriesFirstAppearanceOrder(t *testing.T) {
	rows := []Row{
		{AssetName: "防火牆設備", Category: "實體"},
		{AssetName: "資料庫管理系統", Category: "軟體"},
		{AssetName: "網路設備", Category: "實體"},
		{AssetName: "內部人員", Category: "人員"},
	}
	assert.Equal(t, []string{"實體", "軟體", "人員"}, Categories(rows))
}

func TestDefaultCoversCanonicalCategories(t *testing.T) {
	rows := Default()
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"軟體", "實體", "資料", "人員", "服務"}, Categories(rows))
	for _, row := range rows {
		assert.NotEmpty(t, row.AssetName)
		assert.NotEmpty(t, row.Category)
	}
}
