package transaction

import (
	"fmt"

	"github.com/rekberinx/rekber-bot/internal/domain"
)

// Notification templates. All outbound text uses HTML parse mode.

func adminNewTransactionText(tx *domain.Transaction) string {
	return fmt.Sprintf(
		"🆕 <b>TRANSAKSI BARU</b>\n\n"+
			"📋 Kode: <code>%s</code>\n"+
			"👤 Seller: %s\n"+
			"👤 Buyer: %s\n"+
			"📦 Barang: %s\n"+
			"💰 Harga: %s\n"+
			"📝 Ref: %s\n\n"+
			"Status: ⏳ Menunggu Persetujuan",
		tx.Code, tx.SellerHandle, tx.BuyerHandle, tx.ItemDescription, tx.Price, tx.Reference,
	)
}

func buyerApprovedText(tx *domain.Transaction) string {
	return fmt.Sprintf(
		"✅ <b>TRANSAKSI DISETUJUI</b>\n\n"+
			"📋 Kode: <code>%s</code>\n"+
			"💰 Harga: %s\n\n"+
			"📌 Langkah selanjutnya:\n"+
			"1. Lihat metode pembayaran\n"+
			"2. Transfer ke rekening yang ditentukan\n"+
			"3. Kirim bukti transfer ke bot ini\n\n"+
			"Klik tombol di bawah untuk melihat metode pembayaran:",
		tx.Code, tx.Price,
	)
}

func buyerRejectedText(tx *domain.Transaction) string {
	return fmt.Sprintf(
		"❌ <b>TRANSAKSI DITOLAK</b>\n\n"+
			"📋 Kode: <code>%s</code>\n\n"+
			"Transaksi Anda telah ditolak oleh admin.\n"+
			"Silakan hubungi admin untuk informasi lebih lanjut.",
		tx.Code,
	)
}

func adminPaidText(tx *domain.Transaction) string {
	return fmt.Sprintf(
		"💰 <b>PEMBAYARAN DITERIMA</b>\n\n"+
			"📋 Kode: <code>%s</code>\n"+
			"👤 Seller: %s\n"+
			"👤 Buyer: %s\n"+
			"📦 Barang: %s\n"+
			"💰 Harga: %s\n\n"+
			"✅ Bukti transfer telah diterima.\n"+
			"Dana sudah aman.",
		tx.Code, tx.SellerHandle, tx.BuyerHandle, tx.ItemDescription, tx.Price,
	)
}

func sellerFundsSafeText(tx *domain.Transaction) string {
	return fmt.Sprintf(
		"📦 <b>DANA SUDAH AMAN</b>\n\n"+
			"📋 Kode: <code>%s</code>\n"+
			"👤 Buyer: %s\n"+
			"📦 Barang: %s\n"+
			"💰 Harga: %s\n\n"+
			"✅ Pembayaran dari buyer telah diterima dan diverifikasi.\n"+
			"Dana sudah aman di rekber.\n\n"+
			"📌 <b>Langkah selanjutnya:</b>\n"+
			"Silakan kirimkan barang/akun kepada buyer.\n"+
			"Setelah buyer konfirmasi, dana akan ditransfer ke Anda.\n\n"+
			"⚠️ <b>PERHATIAN:</b>\n"+
			"Jika dalam 1 jam buyer tidak konfirmasi setelah Anda kirim barang,\n"+
			"dana otomatis dicairkan ke Anda.",
		tx.Code, tx.BuyerHandle, tx.ItemDescription, tx.Price,
	)
}

func buyerDeliveredText(tx *domain.Transaction) string {
	return fmt.Sprintf(
		"📦 <b>BARANG TELAH DIKIRIM</b>\n\n"+
			"📋 Kode: <code>%s</code>\n"+
			"👤 Seller: %s\n"+
			"📦 Barang: %s\n\n"+
			"Seller telah mengirimkan barang kepada Anda.\n"+
			"Silakan cek dan verifikasi barang yang diterima.\n\n"+
			"Jika sudah sesuai, klik tombol konfirmasi di bawah:",
		tx.Code, tx.SellerHandle, tx.ItemDescription,
	)
}

func adminCompletedText(tx *domain.Transaction) string {
	return fmt.Sprintf(
		"✅ <b>TRANSAKSI SELESAI</b>\n\n"+
			"📋 Kode: <code>%s</code>\n"+
			"👤 Seller: %s\n"+
			"👤 Buyer: %s\n"+
			"💰 Harga: %s\n\n"+
			"Buyer telah konfirmasi barang diterima dengan baik.\n"+
			"Silakan cairkan dana ke seller.",
		tx.Code, tx.SellerHandle, tx.BuyerHandle, tx.Price,
	)
}

func sellerReleasedText(tx *domain.Transaction) string {
	return fmt.Sprintf(
		"💸 <b>DANA TELAH DICAIRKAN</b>\n\n"+
			"📋 Kode: <code>%s</code>\n"+
			"💰 Jumlah: %s\n\n"+
			"✅ Dana telah ditransfer ke rekening Anda.\n"+
			"Silakan cek mutasi rekening/e-wallet Anda.\n\n"+
			"🎉 Terima kasih telah menggunakan layanan rekber kami!\n"+
			"Selamat bertransaksi kembali! 🔥",
		tx.Code, tx.Price,
	)
}
