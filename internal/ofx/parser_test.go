package ofx

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerodividas/zerodividas/internal/model"
)

// Sample OFX data for testing.
const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>POR
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>BRL
<BANKACCTFROM>
<BANKID>0260
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-89.90
<FITID>2024011501
<NAME>COMPRA NO DEBITO MERCADO CENTRAL
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240105120000[0:GMT]
<TRNAMT>3000.00
<FITID>2024010501
<NAME>CREDIT
<MEMO>Salario Janeiro
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240120120000[0:GMT]
<TRNAMT>-125.00
<FITID>2024012001
<NAME>Padaria Sao Jorge
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestParser_ParseFile(t *testing.T) {
	parser := NewParser()

	transactions, err := parser.ParseFile(strings.NewReader(sampleBankOFX), "acc-1")
	require.NoError(t, err)
	require.Len(t, transactions, 3)

	byID := make(map[string]model.Transaction)
	for _, tx := range transactions {
		byID[tx.ID] = tx
	}

	debit := byID["2024011501"]
	assert.Equal(t, model.TypeExpense, debit.Type)
	assert.Equal(t, model.StatusPaid, debit.Status)
	assert.True(t, debit.Amount.Equal(decimal.RequireFromString("89.90")), "amounts are stored unsigned")
	assert.Equal(t, "MERCADO CENTRAL", debit.Description, "card-network prefix is stripped")
	assert.Equal(t, "acc-1", debit.AccountID)
	assert.Equal(t, 2024, debit.Date.Year())
	assert.Equal(t, 15, debit.Date.Day())

	credit := byID["2024010501"]
	assert.Equal(t, model.TypeIncome, credit.Type)
	assert.True(t, credit.Amount.Equal(decimal.NewFromInt(3000)))
	assert.Equal(t, "Salario Janeiro", credit.Description, "memo replaces a generic name")

	plain := byID["2024012001"]
	assert.Equal(t, "Padaria Sao Jorge", plain.Description)
	assert.False(t, plain.IsRecurring)
	assert.Equal(t, model.RecurrenceNone, plain.Recurrence)
}

func TestParser_ParseFile_InvalidContent(t *testing.T) {
	parser := NewParser()

	_, err := parser.ParseFile(strings.NewReader("not an ofx file"), "acc-1")
	assert.Error(t, err)
}

func TestParser_PreprocessFixesMixedCaseSeverity(t *testing.T) {
	parser := NewParser()

	fixed := parser.preprocessOFX("<SEVERITY>Info</SEVERITY>")
	assert.Equal(t, "<SEVERITY>INFO</SEVERITY>", fixed)
}
