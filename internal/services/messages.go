package services

// User-facing messages. The dashboard renders these verbatim.
const (
	MsgMissingBankInfo    = "Vui lòng cập nhật thông tin ngân hàng"
	MsgMissingReceiver    = "Vui lòng chọn người nhận"
	MsgInsufficientFunds  = "Số dư không đủ để thực hiện giao dịch"
	MsgSelfTransfer       = "Không thể chuyển cho chính mình"
	MsgInvalidReceiver    = "Người nhận không hợp lệ"
	MsgAlreadyResolved    = "Giao dịch đã được xử lý"
	MsgTrxNotFound        = "Không tìm thấy giao dịch"
	MsgWalletNotFound     = "Không tìm thấy ví"
	MsgInvalidAmount      = "Số Goxu không hợp lệ"
	MsgDepositOutOfRange  = "Số Goxu nạp phải từ 10 đến 1.000.000"
	MsgInvalidServicePt   = "Điểm dịch vụ không hợp lệ"
	MsgInvalidTripState   = "Trạng thái chuyến không hợp lệ"
	MsgTripNotFound       = "Không tìm thấy yêu cầu chuyến"
	MsgQRGenerationFailed = "Không thể tạo mã QR thanh toán"
	MsgBadCredentials     = "Tên đăng nhập hoặc mật khẩu không đúng"
	MsgUsernameTaken      = "Tên đăng nhập đã tồn tại"
)
