package telegram

import (
	"fmt"
	"strings"

	"github.com/rekberinx/rekber-bot/internal/domain"
)

const (
	bannedText = "⛔ Anda telah diblokir dari menggunakan bot ini."

	noAdminAccessText = "⛔ Anda tidak memiliki akses admin."

	accessDeniedAlert = "⛔ Akses ditolak"

	notFoundAlert = "❌ Transaksi tidak ditemukan"

	formatPromptText = "📝 <b>BUAT TRANSAKSI BARU</b>\n\n" +
		"Silakan isi format berikut:\n\n" +
		"<code>Username Seller: @username_seller\n" +
		"Username Buyer: @username_buyer\n" +
		"Jenis Barang: [deskripsi barang]\n" +
		"Harga: [jumlah]\n" +
		"Referensi: [no referensi/catatan]</code>\n\n" +
		"📌 Copy format di atas dan isi sesuai data transaksi Anda."

	malformedSubmissionText = "❌ Format tidak lengkap!\n\n" +
		"Pastikan semua field diisi dengan benar:\n" +
		"- Username Seller\n" +
		"- Username Buyer\n" +
		"- Jenis Barang\n" +
		"- Harga\n" +
		"- Referensi"

	proofPromptText = "📤 <b>KIRIM BUKTI TRANSFER</b>\n\n" +
		"Silakan kirim foto atau file bukti transfer Anda.\n\n" +
		"Format yang diterima: Foto (JPG/PNG) atau PDF"

	helpText = "❓ <b>BANTUAN</b>\n\n" +
		"<b>Cara Menggunakan Rekber Bot:</b>\n\n" +
		"<b>Untuk Buyer:</b>\n" +
		"1. Klik 'Buat Transaksi Baru'\n" +
		"2. Isi format transaksi\n" +
		"3. Tunggu persetujuan admin\n" +
		"4. Transfer ke rekening yang ditentukan\n" +
		"5. Kirim bukti transfer\n" +
		"6. Tunggu seller mengirim barang\n" +
		"7. Konfirmasi jika barang sudah diterima\n\n" +
		"<b>Untuk Seller:</b>\n" +
		"1. Tunggu notifikasi dana masuk\n" +
		"2. Kirim barang ke buyer\n" +
		"3. Konfirmasi pengiriman\n" +
		"4. Tunggu dana dicairkan\n\n" +
		"<b>Keamanan:</b>\n" +
		"✅ Dana buyer aman di rekber\n" +
		"✅ Seller dapat barang baru kirim dana\n" +
		"✅ Dispute handling by admin"

	buyerConfirmedEditText = "✅ <b>KONFIRMASI DITERIMA</b>\n\n" +
		"Terima kasih! Transaksi Anda telah selesai.\n" +
		"Admin sedang memproses pencairan dana ke seller.\n\n" +
		"🎉 Selamat bertransaksi!"

	complaintAlert = "⚠️ Keluhan diterima. Silakan hubungi admin untuk penanganan masalah."

	broadcastPromptText = "📢 <b>BROADCAST</b>\n\n" +
		"Kirim pesan yang ingin di-broadcast ke semua user.\n" +
		"Bisa berupa teks, foto, atau dokumen."
)

func welcomeText(fullName string) string {
	return fmt.Sprintf(
		"👋 Selamat datang <b>%s</b>!\n\n"+
			"🛡️ <b>Rekber Bot</b> - Sistem Rekening Bersama yang Aman\n\n"+
			"Silakan pilih menu di bawah:",
		fullName,
	)
}

func joinGateText(channel string) string {
	return fmt.Sprintf(
		"👋 Selamat datang di <b>Rekber Bot</b>!\n\n"+
			"Untuk menggunakan bot ini, silakan join channel terlebih dahulu:\n"+
			"%s\n\n"+
			"Setelah join, klik tombol 'Sudah Join' di bawah.",
		channel,
	)
}

func joinedWelcomeText(fullName string) string {
	return "✅ Terima kasih sudah join!\n\n" + welcomeText(fullName)
}

func submissionCreatedText(code string) string {
	return fmt.Sprintf(
		"✅ <b>Transaksi Berhasil Dibuat!</b>\n\n"+
			"📋 Kode Transaksi: <code>%s</code>\n\n"+
			"⏳ Menunggu persetujuan admin...\n"+
			"Anda akan mendapat notifikasi setelah admin menyetujui.",
		code,
	)
}

func proofReceivedText(code string) string {
	return fmt.Sprintf(
		"✅ <b>BUKTI TRANSFER DITERIMA</b>\n\n"+
			"📋 Kode: <code>%s</code>\n\n"+
			"Bukti transfer Anda telah diterima dan sedang diverifikasi oleh admin.\n"+
			"Dana Anda sudah aman. Seller akan segera mengirimkan barang.\n\n"+
			"Anda akan mendapat notifikasi selanjutnya.",
		code,
	)
}

func paymentMethodsText(banks, ewallets []*domain.PaymentMethod, checkout bool) string {
	var b strings.Builder
	b.WriteString("💳 <b>METODE PEMBAYARAN</b>\n\n")

	if len(banks) > 0 {
		b.WriteString("🏦 <b>BANK:</b>\n")
		for _, pm := range banks {
			fmt.Fprintf(&b, "• %s\n  %s\n  a/n %s\n\n", pm.Name, pm.AccountNumber, pm.AccountName)
		}
	}
	if len(ewallets) > 0 {
		b.WriteString("📱 <b>E-WALLET:</b>\n")
		for _, pm := range ewallets {
			fmt.Fprintf(&b, "• %s\n  %s\n  a/n %s\n\n", pm.Name, pm.AccountNumber, pm.AccountName)
		}
	}
	if checkout {
		b.WriteString("⚠️ <b>PENTING:</b>\n")
		b.WriteString("Setelah transfer, segera kirim bukti transfer!")
	}
	return b.String()
}

var statusEmoji = map[domain.TransactionStatus]string{
	domain.StatusPending:   "⏳",
	domain.StatusApproved:  "✅",
	domain.StatusPaid:      "💰",
	domain.StatusDelivered: "📦",
	domain.StatusCompleted: "🎉",
	domain.StatusRejected:  "❌",
}

func historyText(txs []*domain.Transaction) string {
	if len(txs) == 0 {
		return "📊 <b>RIWAYAT TRANSAKSI</b>\n\nAnda belum memiliki transaksi."
	}

	var b strings.Builder
	b.WriteString("📊 <b>RIWAYAT TRANSAKSI</b>\n\n")
	if len(txs) > 5 {
		txs = txs[:5]
	}
	for _, tx := range txs {
		emoji := statusEmoji[tx.Status]
		if emoji == "" {
			emoji = "•"
		}
		item := tx.ItemDescription
		if len(item) > 30 {
			item = item[:30] + "..."
		}
		fmt.Fprintf(&b, "%s <code>%s</code>\n   %s\n   %s - %s\n\n", emoji, tx.Code, item, tx.Price, tx.Status)
	}
	return b.String()
}

func activeTransactionsText(txs []*domain.Transaction) string {
	if len(txs) == 0 {
		return "📋 <b>TRANSAKSI AKTIF</b>\n\nTidak ada transaksi aktif."
	}

	var b strings.Builder
	b.WriteString("📋 <b>TRANSAKSI AKTIF</b>\n\n")
	if len(txs) > 10 {
		txs = txs[:10]
	}
	for _, tx := range txs {
		fmt.Fprintf(&b, "• <code>%s</code>\n  Status: %s\n  %s\n\n", tx.Code, tx.Status, tx.Price)
	}
	return b.String()
}

func managePaymentsText(methods []*domain.PaymentMethod) string {
	var b strings.Builder
	b.WriteString("💳 <b>KELOLA METODE PEMBAYARAN</b>\n\n")
	if len(methods) == 0 {
		b.WriteString("Belum ada metode pembayaran.\n")
		return b.String()
	}
	for _, pm := range methods {
		status := "✅"
		if !pm.IsActive {
			status = "❌"
		}
		fmt.Fprintf(&b, "%s %s: %s - %s\n", status, pm.Type, pm.Name, pm.AccountNumber)
	}
	return b.String()
}

func addPaymentPromptText(pmType domain.PaymentMethodType) string {
	if pmType == domain.PaymentTypeBank {
		return "➕ <b>TAMBAH BANK</b>\n\n" +
			"Kirim dengan format:\n" +
			"<code>BCA\n1234567890\nJohn Doe</code>\n\n" +
			"Format: Nama Bank | Nomor Rekening | Nama Pemilik\n" +
			"(Pisahkan dengan enter/baris baru)"
	}
	return "➕ <b>TAMBAH E-WALLET</b>\n\n" +
		"Kirim dengan format:\n" +
		"<code>Dana\n08123456789\nJohn Doe</code>\n\n" +
		"Format: Nama E-Wallet | Nomor | Nama Pemilik\n" +
		"(Pisahkan dengan enter/baris baru)"
}

func paymentAddedText(pm *domain.PaymentMethod) string {
	return fmt.Sprintf(
		"✅ Metode pembayaran berhasil ditambahkan!\n\n"+
			"Type: %s\nNama: %s\nNomor: %s\na/n: %s",
		pm.Type, pm.Name, pm.AccountNumber, pm.AccountName,
	)
}

func broadcastDoneText(success, failed int) string {
	return fmt.Sprintf("✅ Broadcast selesai!\n\nBerhasil: %d\nGagal: %d", success, failed)
}

func statsText(totalUsers, totalTx, completed, pending int64) string {
	return fmt.Sprintf(
		"📊 <b>STATISTIK</b>\n\n"+
			"👥 Total User: %d\n"+
			"📋 Total Transaksi: %d\n"+
			"✅ Selesai: %d\n"+
			"⏳ Pending: %d",
		totalUsers, totalTx, completed, pending,
	)
}
