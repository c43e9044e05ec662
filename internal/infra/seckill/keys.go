package seckill

import "strconv"

const AdmissionStream = "seckill:admissions"

// StockKey holds the fast-path stock and sale window: stock, begin_at, end_at (unix ms).
func StockKey(voucherID int64) string {
	return "seckill:voucher:" + strconv.FormatInt(voucherID, 10)
}

// BuyersKey is the set of users already admitted for a voucher.
func BuyersKey(voucherID int64) string {
	return "seckill:order:" + strconv.FormatInt(voucherID, 10)
}
