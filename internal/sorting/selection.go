package sorting

// Selection scans right of each boundary for the minimum and swaps it in
// only when it is not already in place.
func Selection(nums []int, rec Recorder) {
	n := len(nums)
	for left := 0; left < n; left++ {
		smallest := left
		for right := left + 1; right < n; right++ {
			emit(rec, Compare(smallest, right), nums)
			if nums[right] < nums[smallest] {
				smallest = right
			}
		}
		if smallest != left {
			nums[left], nums[smallest] = nums[smallest], nums[left]
			emit(rec, Swap(left, smallest), nums)
		}
	}
	emit(rec, Noop(), nums)
}
